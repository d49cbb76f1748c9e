package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/minefind/internal/session"
)

var ErrDuplicateRecord = errors.New("game already recorded")

// Record is the outcome of one finished game. The board itself is never
// stored.
type Record struct {
	GameId    uuid.UUID          `json:"game_id" db:"game_id"`
	Width     int                `json:"width" db:"width"`
	Height    int                `json:"height" db:"height"`
	MineCount int                `json:"mine_count" db:"mine_count"`
	Outcome   string             `json:"outcome" db:"outcome"`
	Moves     int                `json:"moves" db:"moves"`
	StartedAt time.Time          `json:"started_at" db:"started_at"`
	EndedAt   time.Time          `json:"ended_at" db:"ended_at"`
	CreatedAt pgtype.Timestamptz `json:"-" db:"created_at"`
}

// NewRecord captures a finished session.
func NewRecord(s *session.Session) (Record, error) {
	if !s.Over() || s.EndedAt == nil {
		return Record{}, fmt.Errorf("game %s is not over", s.ID)
	}
	return Record{
		GameId:    s.ID,
		Width:     s.Params.Width,
		Height:    s.Params.Height,
		MineCount: s.Params.MineCount,
		Outcome:   s.Outcome(),
		Moves:     s.Moves,
		StartedAt: s.StartedAt,
		EndedAt:   *s.EndedAt,
	}, nil
}

func (q *Queries) CreateRecord(ctx context.Context, r Record) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO game_record (
			game_id, width, height, mine_count, outcome, moves, started_at, ended_at
		)
		VALUES (
			@game_id, @width, @height, @mine_count, @outcome, @moves, @started_at, @ended_at
		);`,
		pgx.NamedArgs{
			"game_id":    r.GameId,
			"width":      r.Width,
			"height":     r.Height,
			"mine_count": r.MineCount,
			"outcome":    r.Outcome,
			"moves":      r.Moves,
			"started_at": r.StartedAt,
			"ended_at":   r.EndedAt,
		},
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateRecord, r.GameId)
	}
	return err
}

type RecordFilter struct {
	Width     *int    `schema:"width"`
	Height    *int    `schema:"height"`
	MineCount *int    `schema:"mine_count"`
	Outcome   *string `schema:"outcome"`
	Limit     int     `schema:"limit"`
}

const defaultRecordLimit = 100

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Width != nil {
		clauses = append(clauses, "width = @width")
		args["width"] = *f.Width
	}
	if f.Height != nil {
		clauses = append(clauses, "height = @height")
		args["height"] = *f.Height
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mine_count")
		args["mine_count"] = *f.MineCount
	}
	if f.Outcome != nil {
		clauses = append(clauses, "outcome = @outcome")
		args["outcome"] = *f.Outcome
	}
	limit := f.Limit
	if limit <= 0 || limit > defaultRecordLimit {
		limit = defaultRecordLimit
	}
	args["limit"] = limit
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListRecords(ctx context.Context, filter RecordFilter) ([]Record, error) {
	query := `
	SELECT
		game_id, width, height, mine_count, outcome, moves,
		started_at, ended_at, created_at
	FROM game_record`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}
	query += " ORDER BY ended_at DESC LIMIT @limit;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
