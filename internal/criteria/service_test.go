package criteria

import (
	"context"
	"errors"
	"testing"

	"eventscore/internal/apperr"
)

type fakeStore struct {
	rows   map[int64]Criteria
	nextID int64
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]Criteria{}, nextID: 1}
}

func (f *fakeStore) ListByEvent(_ context.Context, eventID int64) ([]Criteria, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Criteria
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.rows[id]; ok && c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, c *Criteria) error {
	if f.err != nil {
		return f.err
	}
	c.ID = f.nextID
	f.nextID++
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeStore) Update(_ context.Context, id int64, name string, maxScore int) (*Criteria, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	c.Name = name
	c.MaxScore = maxScore
	f.rows[id] = c
	return &c, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func TestCreateThenList(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, 3, "Stage Presence", 25)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("server-assigned id missing")
	}

	list, err := svc.List(ctx, 3)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("List() = %+v, want the created record", list)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc := NewService(newFakeStore())
	list, err := svc.List(context.Background(), 99)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list == nil {
		t.Error("List() returned nil for an event without criteria")
	}
	if len(list) != 0 {
		t.Errorf("List() = %+v, want empty", list)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		critName string
		maxScore int
	}{
		{"blank name", "  ", 10},
		{"zero score", "Costume", 0},
		{"negative score", "Costume", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewService(store)

			if _, err := svc.Create(context.Background(), 1, tt.critName, tt.maxScore); apperr.KindOf(err) != apperr.Validation {
				t.Errorf("Create() kind = %v, want Validation", apperr.KindOf(err))
			}
			if len(store.rows) != 0 {
				t.Error("invalid criteria persisted")
			}

			if _, err := svc.Update(context.Background(), 1, tt.critName, tt.maxScore); apperr.KindOf(err) != apperr.Validation {
				t.Errorf("Update() kind = %v, want Validation", apperr.KindOf(err))
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Talent", 50)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, created.ID, "Talent and Skill", 40)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Talent and Skill" || updated.MaxScore != 40 {
		t.Errorf("Update() = %+v", updated)
	}
	if updated.EventID != 1 {
		t.Errorf("EventID = %d, want 1", updated.EventID)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeStore())
	_, err := svc.Update(context.Background(), 404, "Name", 10)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestDelete(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Poise", 15)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, created.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("second Delete() kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestStoreErrorsAreInternal(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.List(ctx, 1); apperr.KindOf(err) != apperr.Internal {
		t.Errorf("List() kind = %v, want Internal", apperr.KindOf(err))
	}
	if _, err := svc.Create(ctx, 1, "X", 10); apperr.KindOf(err) != apperr.Internal {
		t.Errorf("Create() kind = %v, want Internal", apperr.KindOf(err))
	}
}
