package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventdesk/server/internal/domain/events"
	"github.com/jackc/pgx/v5"
)

var _ events.Repository = (*EventRepository)(nil)

const eventColumns = `id, title, description, location, image_url, status, event_date, event_time, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event events.Event) (events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO events (title, description, location, image_url, status, event_date, event_time)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+eventColumns,
		event.Title,
		event.Description,
		event.Location,
		event.ImageURL,
		event.Status,
		event.EventDate.Time,
		event.EventTime,
	)

	created, err := scanEvent(row)
	if err != nil {
		return events.Event{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

// List fetches one page and the total count against the same WHERE clause
// inside a single repeatable-read transaction, so the pagination metadata is
// consistent with the returned rows even under concurrent writes.
func (r *EventRepository) List(ctx context.Context, params events.ListParams) ([]events.Event, int64, error) {
	if r.tx != nil {
		return r.list(ctx, r.tx, params)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("begin list tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	items, total, err := r.list(ctx, tx, params)
	if err != nil {
		return nil, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit list tx: %w", err)
	}
	return items, total, nil
}

func (r *EventRepository) list(ctx context.Context, q queryer, params events.ListParams) ([]events.Event, int64, error) {
	keyword := escapeLike(params.Keyword)

	// SortColumn and SortOrder come from the fixed allow-lists in the
	// events package; raw request input never reaches this clause.
	query := fmt.Sprintf(`
SELECT %s
  FROM events
 WHERE ($1 = '' OR title ILIKE '%%' || $1 || '%%' OR description ILIKE '%%' || $1 || '%%')
 ORDER BY %s %s
 LIMIT $2 OFFSET $3
`, eventColumns, params.SortColumn, params.SortOrder)

	rows, err := q.Query(ctx, query, keyword, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := make([]events.Event, 0, params.PageSize)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate events: %w", err)
	}

	var total int64
	err = q.QueryRow(ctx, `
SELECT count(*)
  FROM events
 WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
`, keyword).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	return items, total, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event events.Event) (events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
UPDATE events
   SET title = $2, description = $3, location = $4, image_url = $5,
       status = $6, event_date = $7, event_time = $8, updated_at = now()
 WHERE id = $1
RETURNING `+eventColumns,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.ImageURL,
		event.Status,
		event.EventDate.Time,
		event.EventTime,
	)

	updated, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.queryer().Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func scanEvent(row pgx.Row) (events.Event, error) {
	var (
		event     events.Event
		eventDate time.Time
	)
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.ImageURL,
		&event.Status,
		&eventDate,
		&event.EventTime,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return events.Event{}, err
	}
	event.EventDate = events.NewDate(eventDate)
	return event, nil
}

// escapeLike neutralizes LIKE wildcards in user keywords so "50%" matches the
// literal text instead of everything.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
