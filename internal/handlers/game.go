package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefind/internal/config"
	"github.com/vancomm/minefind/internal/mines"
	"github.com/vancomm/minefind/internal/repository"
	"github.com/vancomm/minefind/internal/session"
)

type Recorder interface {
	CreateRecord(ctx context.Context, r repository.Record) error
}

type ConnectDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseConnectDTO(src map[string][]string) (ConnectDTO, error) {
	var dto ConnectDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameHandler serves one game per WebSocket connection. The connection
// goroutine owns the session, its board and its random source.
type GameHandler struct {
	log     logrus.FieldLogger
	ws      *config.WebSocket
	records Recorder
	newRand func() *rand.Rand
}

// NewGameHandler builds the handler. records may be nil, in which case
// finished games are only logged.
func NewGameHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	records Recorder,
	newRand func() *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:     log,
		ws:      ws,
		records: records,
		newRand: newRand,
	}
}

func (g *GameHandler) Connect(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseConnectDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	params := mines.GameParams(dto)
	if err := params.Validate(); err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("upgrade")
		return
	}
	defer c.Close()

	gen := mines.NewGenerator(g.newRand())
	s, err := session.New(gen, params)
	if err != nil {
		g.log.WithError(err).Error("unable to generate a new game")
		return
	}
	log := g.log.WithField("game_id", s.ID)
	log.WithField("params", params.Seed()).Info("new game")

	if err := c.WriteJSON(s.Snapshot()); err != nil {
		log.WithError(err).Error("write")
		return
	}

	recorded := false
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)

		var reply any
		for _, line := range strings.Split(text, "\n") {
			cmd, err := session.ParseCommand(line)
			if err != nil {
				reply = wrapError(err)
				break
			}

			switch cmd.Kind {
			case session.Quit:
				_ = c.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
				)
				return
			case session.NewGame:
				next, err := session.New(gen, params)
				if err != nil {
					log.WithError(err).Error("unable to generate a new game")
					return
				}
				s, recorded = next, false
				log = g.log.WithField("game_id", s.ID)
				log.WithField("params", params.Seed()).Info("new game")
				continue
			}

			// invalid moves are reported and the game goes on
			if err := s.Execute(cmd); err != nil {
				reply = wrapError(err)
				break
			}
			if s.Over() && !recorded {
				g.record(r.Context(), log, s)
				recorded = true
			}
		}

		if reply == nil {
			reply = s.Snapshot()
		}
		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("write")
			return
		}
		log.Debug("\t< <session data>")
	}
}

func (g *GameHandler) record(ctx context.Context, log logrus.FieldLogger, s *session.Session) {
	log = log.WithFields(logrus.Fields{
		"outcome": s.Outcome(),
		"moves":   s.Moves,
	})
	log.Info("game over")

	if g.records == nil {
		return
	}
	rec, err := repository.NewRecord(s)
	if err != nil {
		log.WithError(err).Error("unable to build game record")
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := g.records.CreateRecord(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			log.WithError(err).Warn("game recorded twice")
			return
		}
		log.WithError(err).Error("unable to record game")
	}
}
