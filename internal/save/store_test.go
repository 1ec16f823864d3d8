package save

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/nightpath/storycore/internal/emotion"
)

func sampleData(scene string) Data {
	return Data{
		SceneID:    scene,
		EventIndex: 2,
		Emotions: emotion.Snapshot{
			Axes: map[string]emotion.AxisState{
				"Obsession": {Value: 42.5, LastUpdate: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
			},
			History: []emotion.HistoryEntry{
				{Axis: "Obsession", OldValue: 0, NewValue: 42.5, Delta: 43,
					Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
			},
		},
		SavedAt: time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
	}
}

// testStoreContract exercises the behavior every Store must share.
func testStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound on delete, got %v", err)
	}

	if err := store.Put(ctx, "slot1", sampleData("CH0_PHASE_02")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "slot2", sampleData("CH1_PHASE_01")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "slot1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SceneID != "CH0_PHASE_02" || got.EventIndex != 2 {
		t.Fatalf("unexpected data: %+v", got)
	}
	if got.Emotions.Axes["Obsession"].Value != 42.5 {
		t.Fatalf("emotion snapshot lost: %+v", got.Emotions)
	}
	if len(got.Emotions.History) != 1 {
		t.Fatalf("history lost: %+v", got.Emotions.History)
	}

	// Overwrite is an upsert.
	if err := store.Put(ctx, "slot1", sampleData("CH0_PHASE_04")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get(ctx, "slot1")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got.SceneID != "CH0_PHASE_04" {
		t.Fatalf("overwrite not applied: %+v", got)
	}

	slots, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 2 || slots[0] != "slot1" || slots[1] != "slot2" {
		t.Fatalf("unexpected slot list: %v", slots)
	}

	if err := store.Delete(ctx, "slot2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "slot2"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound after delete, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer store.Close()

	testStoreContract(t, store)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	testStoreContract(t, NewRedisStore(client, RedisOptions{}))
}

func TestRedisStorePrefixIsolation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	a := NewRedisStore(client, RedisOptions{Prefix: "player_a"})
	b := NewRedisStore(client, RedisOptions{Prefix: "player_b"})

	if err := a.Put(ctx, "auto", sampleData("CH0_PHASE_01")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := b.Get(ctx, "auto"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("prefixes leaked: %v", err)
	}
	slots, err := a.List(ctx)
	if err != nil || len(slots) != 1 || slots[0] != "auto" {
		t.Fatalf("unexpected list: %v %v", slots, err)
	}
}
