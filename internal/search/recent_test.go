package search

import (
	"testing"
	"time"
)

func TestRecentSaveOrdersNewestFirst(t *testing.T) {
	r := NewRecent(NewMemoryStorage())

	r.Save("galaxy s23")
	r.Save("pixel 8")
	r.Save("iphone 15")

	got := r.List()
	want := []string{"iphone 15", "pixel 8", "galaxy s23"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %v", i, want[i], got)
		}
	}
}

func TestRecentSaveDeduplicatesAndPromotes(t *testing.T) {
	r := NewRecent(NewMemoryStorage())

	r.Save("galaxy s23")
	r.Save("pixel 8")
	r.Save("galaxy s23")

	got := r.List()
	if len(got) != 2 {
		t.Fatalf("expected the repeat to be deduplicated, got %v", got)
	}
	if got[0] != "galaxy s23" || got[1] != "pixel 8" {
		t.Fatalf("repeated query must move to the head, got %v", got)
	}
}

func TestRecentCapsAtFive(t *testing.T) {
	r := NewRecent(NewMemoryStorage())

	terms := []string{"a1", "b2", "c3", "d4", "e5", "f6"}
	for _, term := range terms {
		r.Save(term)
	}

	got := r.List()
	if len(got) != MaxRecent {
		t.Fatalf("expected the history capped at %d, got %v", MaxRecent, got)
	}
	if got[0] != "f6" {
		t.Fatalf("expected the newest entry at the head, got %v", got)
	}
	for _, term := range got {
		if term == "a1" {
			t.Fatal("oldest entry must be evicted")
		}
	}
}

func TestRecentIgnoresBlankTerms(t *testing.T) {
	r := NewRecent(NewMemoryStorage())

	r.Save("   ")
	r.Save("")

	if got := r.List(); len(got) != 0 {
		t.Fatalf("blank terms must not be recorded, got %v", got)
	}
}

func TestRecentExpiresAfterRetentionWindow(t *testing.T) {
	r := NewRecent(NewMemoryStorage())

	base := time.Now()
	r.now = func() time.Time { return base }
	r.Save("stale query")

	r.now = func() time.Time { return base.Add(RetentionWindow - time.Hour) }
	r.Save("fresh query")
	if got := r.List(); len(got) != 2 {
		t.Fatalf("nothing should expire inside the window, got %v", got)
	}

	r.now = func() time.Time { return base.Add(RetentionWindow + time.Hour) }
	got := r.List()
	if len(got) != 1 || got[0] != "fresh query" {
		t.Fatalf("expected only the fresh entry to survive, got %v", got)
	}
}

func TestRecentClear(t *testing.T) {
	store := NewMemoryStorage()
	r := NewRecent(store)

	r.Save("galaxy s23")
	r.Clear()

	if got := r.List(); len(got) != 0 {
		t.Fatalf("expected an empty history after clear, got %v", got)
	}
	if _, ok := store.Get(recentKey); ok {
		t.Fatal("clear must remove the storage key entirely")
	}
}

func TestRecentCorruptHistoryDiscarded(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(recentKey, "{not json")
	r := NewRecent(store)

	if got := r.List(); len(got) != 0 {
		t.Fatalf("corrupt history must read as empty, got %v", got)
	}
	if _, ok := store.Get(recentKey); ok {
		t.Fatal("corrupt history must be removed from storage")
	}

	r.Save("galaxy s23")
	if got := r.List(); len(got) != 1 {
		t.Fatalf("history must work again after a corrupt read, got %v", got)
	}
}

func TestRecentChangePropagatesAcrossContexts(t *testing.T) {
	store := NewMemoryStorage()
	writer := NewRecent(store)
	reader := NewRecent(store)

	changed := make(chan []string, 1)
	reader.OnChange(func(terms []string) {
		select {
		case changed <- terms:
		default:
		}
	})

	writer.Save("galaxy s23")

	select {
	case terms := <-changed:
		if len(terms) != 1 || terms[0] != "galaxy s23" {
			t.Fatalf("expected the new history in the notification, got %v", terms)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the cross-context notification")
	}
}

func TestRecentStartCleanupSweepsExpired(t *testing.T) {
	store := NewMemoryStorage()
	r := NewRecent(store)

	past := time.Now().Add(-RetentionWindow - time.Hour)
	r.now = func() time.Time { return past }
	r.Save("ancient query")
	r.now = time.Now

	stop := r.StartCleanup(10 * time.Millisecond)
	defer stop()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Get(recentKey); !ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("the periodic sweep never removed the expired entry")
}
