package criteria

import (
	"context"
	"fmt"
	"strings"

	"eventscore/internal/apperr"
)

// Service validates and coordinates criteria operations.
type Service struct {
	store Store
}

// NewService builds a service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the criteria set for an event. An event without criteria
// yields an empty, non-nil slice.
func (s *Service) List(ctx context.Context, eventID int64) ([]Criteria, error) {
	list, err := s.store.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list criteria: %w", err)
	}
	if list == nil {
		list = []Criteria{}
	}
	return list, nil
}

// Create validates and persists a new criteria for the event.
func (s *Service) Create(ctx context.Context, eventID int64, name string, maxScore int) (*Criteria, error) {
	if err := validate(name, maxScore); err != nil {
		return nil, err
	}
	c := Criteria{EventID: eventID, Name: strings.TrimSpace(name), MaxScore: maxScore}
	if err := s.store.Insert(ctx, &c); err != nil {
		return nil, fmt.Errorf("insert criteria: %w", err)
	}
	return &c, nil
}

// Update replaces the name and max score of an existing criteria.
func (s *Service) Update(ctx context.Context, id int64, name string, maxScore int) (*Criteria, error) {
	if err := validate(name, maxScore); err != nil {
		return nil, err
	}
	c, err := s.store.Update(ctx, id, strings.TrimSpace(name), maxScore)
	if err != nil {
		return nil, fmt.Errorf("update criteria: %w", err)
	}
	if c == nil {
		return nil, apperr.New(apperr.NotFound, "Criteria not found")
	}
	return c, nil
}

// Delete removes a criteria.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete criteria: %w", err)
	}
	if !removed {
		return apperr.New(apperr.NotFound, "Criteria not found")
	}
	return nil
}

func validate(name string, maxScore int) error {
	if strings.TrimSpace(name) == "" {
		return apperr.New(apperr.Validation, "Criteria name is required.")
	}
	if maxScore <= 0 {
		return apperr.New(apperr.Validation, "Max score must be a positive integer.")
	}
	return nil
}
