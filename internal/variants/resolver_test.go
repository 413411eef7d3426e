package variants

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

func v(storage, ram, colour, keyName string) catalog.Variant {
	return catalog.Variant{Storage: storage, RAM: ram, Colour: colour, KeyName: keyName}
}

func TestResolveExactMatchWins(t *testing.T) {
	siblings := []catalog.Variant{
		v("256GB", "8GB", "Red", "x-256-8-red"),
		v("256GB", "8GB", "Blue", "x-256-8-blue"),
		v("128GB", "8GB", "Blue", "x-128-8-blue"),
	}
	current := v("128GB", "8GB", "Blue", "x-128-8-blue")

	got, err := Resolve(siblings, Storage, "256GB", current)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.KeyName != "x-256-8-blue" {
		t.Fatalf("expected exact colour+ram match, got %s", got.KeyName)
	}
}

func TestResolveFallsThroughToBareTargetMatch(t *testing.T) {
	// No 256GB sibling shares the current colour, so the cascade lands on
	// the first sibling carrying the new storage.
	siblings := []catalog.Variant{
		v("128GB", "", "Red", "x-128-red"),
		v("256GB", "", "Red", "x-256-red"),
		v("128GB", "", "Blue", "x-128-blue"),
	}
	current := v("128GB", "", "Blue", "x-128-blue")

	got, err := Resolve(siblings, Storage, "256GB", current)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.KeyName != "x-256-red" {
		t.Fatalf("expected fall-through to (256GB, Red), got %s", got.KeyName)
	}
}

func TestResolveStorageChangePrefersColourOverRAM(t *testing.T) {
	siblings := []catalog.Variant{
		v("256GB", "8GB", "Red", "x-256-8-red"),   // keeps RAM
		v("256GB", "4GB", "Blue", "x-256-4-blue"), // keeps colour
		v("128GB", "8GB", "Blue", "x-128-8-blue"),
	}
	current := v("128GB", "8GB", "Blue", "x-128-8-blue")

	got, err := Resolve(siblings, Storage, "256GB", current)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.KeyName != "x-256-4-blue" {
		t.Fatalf("storage change should hold colour before RAM, got %s", got.KeyName)
	}
}

func TestResolveRAMChangePrefersStorageOverColour(t *testing.T) {
	siblings := []catalog.Variant{
		v("256GB", "12GB", "Blue", "x-256-12-blue"), // keeps colour
		v("128GB", "12GB", "Red", "x-128-12-red"),   // keeps storage
		v("128GB", "8GB", "Blue", "x-128-8-blue"),
	}
	current := v("128GB", "8GB", "Blue", "x-128-8-blue")

	got, err := Resolve(siblings, RAM, "12GB", current)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.KeyName != "x-128-12-red" {
		t.Fatalf("RAM change should hold storage before colour, got %s", got.KeyName)
	}
}

func TestResolveColourChangePrefersStorageOverRAM(t *testing.T) {
	siblings := []catalog.Variant{
		v("256GB", "8GB", "Red", "x-256-8-red"),  // keeps RAM
		v("128GB", "4GB", "Red", "x-128-4-red"),  // keeps storage
		v("128GB", "8GB", "Blue", "x-128-8-blue"),
	}
	current := v("128GB", "8GB", "Blue", "x-128-8-blue")

	got, err := Resolve(siblings, Colour, "Red", current)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.KeyName != "x-128-4-red" {
		t.Fatalf("colour change should hold storage before RAM, got %s", got.KeyName)
	}
}

func TestResolveUnsetAttributesNeverConstrain(t *testing.T) {
	// Current product has no RAM; the cascade must not require candidates
	// to match an empty RAM.
	siblings := []catalog.Variant{
		v("256GB", "8GB", "Blue", "x-256-8-blue"),
		v("128GB", "", "Blue", "x-128-blue"),
	}
	current := v("128GB", "", "Blue", "x-128-blue")

	got, err := Resolve(siblings, Storage, "256GB", current)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.KeyName != "x-256-8-blue" {
		t.Fatalf("expected colour-holding match, got %s", got.KeyName)
	}
}

func TestResolveNoCandidate(t *testing.T) {
	siblings := []catalog.Variant{
		v("128GB", "", "Blue", "x-128-blue"),
	}
	current := v("128GB", "", "Blue", "x-128-blue")

	_, err := Resolve(siblings, Storage, "1TB", current)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	_, err = Resolve(siblings, Colour, "", current)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for empty value, got %v", err)
	}
}

func TestBuildSelectorsNumericSortAndInsertionOrder(t *testing.T) {
	siblings := []catalog.Variant{
		v("512GB", "12GB", "Midnight Black", "a"),
		v("64GB", "8GB", "Ocean Blue", "b"),
		v("128GB", "8GB", "Midnight Black", "c"),
		v("64GB", "12GB", "Coral Red", "d"),
	}

	sel := BuildSelectors(siblings)

	wantStorage := []string{"64GB", "128GB", "512GB"}
	for i, want := range wantStorage {
		if sel.Storage[i] != want {
			t.Fatalf("storage order: expected %v, got %v", wantStorage, sel.Storage)
		}
	}
	wantRAM := []string{"8GB", "12GB"}
	for i, want := range wantRAM {
		if sel.RAM[i] != want {
			t.Fatalf("ram order: expected %v, got %v", wantRAM, sel.RAM)
		}
	}
	// Colour keeps first-seen order, not any sort.
	wantColour := []string{"Midnight Black", "Ocean Blue", "Coral Red"}
	for i, want := range wantColour {
		if sel.Colour[i] != want {
			t.Fatalf("colour order: expected %v, got %v", wantColour, sel.Colour)
		}
	}
}

func TestBuildSelectorsOmitsEmptySections(t *testing.T) {
	// No sibling has RAM populated, so the RAM selector section must be
	// entirely absent, not rendered empty.
	siblings := []catalog.Variant{
		v("128GB", "", "Blue", "a"),
		v("256GB", "", "Red", "b"),
	}

	sel := BuildSelectors(siblings)
	if sel.RAM != nil {
		t.Fatalf("expected nil RAM values, got %v", sel.RAM)
	}

	raw, err := json.Marshal(sel)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(raw), `"ram"`) {
		t.Fatalf("RAM section must be omitted from output, got %s", raw)
	}
	if !strings.Contains(string(raw), `"storage"`) || !strings.Contains(string(raw), `"colour"`) {
		t.Fatalf("populated sections must be present, got %s", raw)
	}
}
