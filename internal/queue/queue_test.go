package queue

import (
	"context"
	"testing"
	"time"
)

func TestNewMessage(t *testing.T) {
	msg := NewMessage(TypeWelcome, "a@b.com", "Ann Lee")
	if msg.ID == "" {
		t.Error("message id must be set")
	}
	if msg.Type != TypeWelcome || msg.Email != "a@b.com" || msg.Name != "Ann Lee" {
		t.Errorf("message = %+v", msg)
	}
	if other := NewMessage(TypeWelcome, "a@b.com", "Ann Lee"); other.ID == msg.ID {
		t.Error("ids must be unique")
	}
}

func TestInMemoryRoundTrip(t *testing.T) {
	q := NewInMemory(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	want := NewMessage(TypeWelcome, "a@b.com", "Ann Lee")
	if err := q.Publish(ctx, want); err != nil {
		t.Fatal(err)
	}

	msgs, err := q.Consume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-msgs:
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("no message consumed")
	}
}

func TestInMemoryPublishHonorsContext(t *testing.T) {
	q := NewInMemory(1)
	ctx := context.Background()

	if err := q.Publish(ctx, NewMessage(TypeWelcome, "a@b.com", "")); err != nil {
		t.Fatal(err)
	}

	full, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if err := q.Publish(full, NewMessage(TypeWelcome, "b@c.com", "")); err == nil {
		t.Error("publish into a full queue should fail once the context expires")
	}
}
