package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

// ErrScriptNotFound is returned when no history entry has the requested ID.
var ErrScriptNotFound = errors.New("script not found")

const scriptColumns = `
	id, topic, tone, style, duration, audience, language, notes,
	channel_id, secondary_tones, prompt, script, created_at`

type ScriptRepo struct {
	pool *pgxpool.Pool
}

func NewScriptRepo(pool *pgxpool.Pool) *ScriptRepo {
	return &ScriptRepo{pool: pool}
}

// Insert stores a generated script. CreatedAt is filled by the database when
// zero.
func (r *ScriptRepo) Insert(ctx context.Context, s *model.Script) error {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return fmt.Errorf("insert script: invalid id %q: %w", s.ID, err)
	}
	secondary := s.SecondaryTones
	if secondary == nil {
		secondary = []string{}
	}

	query := `
		INSERT INTO scripts (id, topic, tone, style, duration, audience, language, notes,
		                     channel_id, secondary_tones, prompt, script, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13::timestamptz, NOW()))
		RETURNING created_at`

	req := s.Request
	return r.pool.QueryRow(ctx, query,
		id, req.Topic, req.Tone, req.Style, req.Duration, req.Audience, req.Language, req.Notes,
		s.ChannelID, secondary, s.Prompt, s.Content, optionalTime(s.CreatedAt),
	).Scan(&s.CreatedAt)
}

// optionalTime maps the zero time to SQL NULL.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// FindByID returns one history entry.
func (r *ScriptRepo) FindByID(ctx context.Context, id string) (*model.Script, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrScriptNotFound
	}

	query := `SELECT` + scriptColumns + ` FROM scripts WHERE id = $1`
	s, err := scanScript(r.pool.QueryRow(ctx, query, parsed))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrScriptNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListRecent returns the newest history entries, newest first.
func (r *ScriptRepo) ListRecent(ctx context.Context, limit int) ([]model.Script, error) {
	query := `SELECT` + scriptColumns + ` FROM scripts ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scripts := make([]model.Script, 0, limit)
	for rows.Next() {
		s, err := scanScript(rows)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, *s)
	}
	return scripts, rows.Err()
}

func scanScript(row pgx.Row) (*model.Script, error) {
	var (
		s  model.Script
		id uuid.UUID
	)
	err := row.Scan(
		&id, &s.Request.Topic, &s.Request.Tone, &s.Request.Style, &s.Request.Duration,
		&s.Request.Audience, &s.Request.Language, &s.Request.Notes,
		&s.ChannelID, &s.SecondaryTones, &s.Prompt, &s.Content, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ID = id.String()
	return &s, nil
}
