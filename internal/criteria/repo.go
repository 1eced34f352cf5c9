package criteria

import (
	"context"
	"database/sql"
	"errors"
)

// Repository persists criteria in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListByEvent returns all criteria for an event, oldest first.
func (r *Repository) ListByEvent(ctx context.Context, eventID int64) ([]Criteria, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT criteria_id, event_id, criteria_name, max_score, created_at
		FROM criteria
		WHERE event_id = $1
		ORDER BY criteria_id
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Criteria
	for rows.Next() {
		var c Criteria
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.MaxScore, &c.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// Insert writes a new criteria row.
func (r *Repository) Insert(ctx context.Context, c *Criteria) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO criteria (event_id, criteria_name, max_score)
		VALUES ($1, $2, $3)
		RETURNING criteria_id, created_at
	`, c.EventID, c.Name, c.MaxScore)
	return row.Scan(&c.ID, &c.CreatedAt)
}

// Update replaces name and max score for an existing row.
func (r *Repository) Update(ctx context.Context, id int64, name string, maxScore int) (*Criteria, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE criteria
		SET criteria_name = $2, max_score = $3
		WHERE criteria_id = $1
		RETURNING criteria_id, event_id, criteria_name, max_score, created_at
	`, id, name, maxScore)
	var c Criteria
	if err := row.Scan(&c.ID, &c.EventID, &c.Name, &c.MaxScore, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a criteria row.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM criteria WHERE criteria_id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
