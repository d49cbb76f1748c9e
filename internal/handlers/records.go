package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefind/internal/repository"
)

type RecordLister interface {
	ListRecords(ctx context.Context, filter repository.RecordFilter) ([]repository.Record, error)
}

type RecordsHandler struct {
	log     logrus.FieldLogger
	records RecordLister
	dec     *schema.Decoder
}

func NewRecordsHandler(log logrus.FieldLogger, records RecordLister) *RecordsHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return &RecordsHandler{log: log, records: records, dec: dec}
}

func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.RecordFilter
	if err := h.dec.Decode(&filter, r.URL.Query()); err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	records, err := h.records.ListRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to list game records")
		return
	}
	if records == nil {
		records = []repository.Record{}
	}

	sendJSONOrLog(w, h.log, records)
}
