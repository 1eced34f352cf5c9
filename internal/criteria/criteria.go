package criteria

import (
	"context"
	"time"
)

// Criteria is a named, scored rubric item belonging to an event.
type Criteria struct {
	ID        int64     `json:"criteria_id"`
	EventID   int64     `json:"event_id"`
	Name      string    `json:"criteria_name"`
	MaxScore  int       `json:"max_score"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence contract for criteria. The store enforces the
// event foreign key and the positive max_score check.
type Store interface {
	ListByEvent(ctx context.Context, eventID int64) ([]Criteria, error)
	// Insert persists a new criteria and fills in the generated id.
	Insert(ctx context.Context, c *Criteria) error
	// Update replaces name and max score; returns (nil, nil) when no row
	// has the id.
	Update(ctx context.Context, id int64, name string, maxScore int) (*Criteria, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
