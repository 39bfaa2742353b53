package catalog

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/akorchagin/procsim/internal/domain"
)

func TestCatalogSize(t *testing.T) {
	c := New()
	if c.Len() != 20 {
		t.Errorf("Expected 20 built-in scenarios, got %d", c.Len())
	}
	if len(c.List()) != c.Len() {
		t.Errorf("List length %d does not match Len %d", len(c.List()), c.Len())
	}
}

func TestListOrdering(t *testing.T) {
	list := New().List()
	sorted := sort.SliceIsSorted(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		return list[i].Title < list[j].Title
	})
	if !sorted {
		t.Error("Expected list ordered by category, then title")
	}
}

func TestGet(t *testing.T) {
	c := New()

	sc, err := c.Get(8)
	if err != nil {
		t.Fatalf("Get(8) failed: %v", err)
	}
	if sc.Title != "Logistics Demurrage" {
		t.Errorf("Unexpected title for scenario 8: %q", sc.Title)
	}
	if sc.UserBrief == "" || sc.SystemPersona == "" {
		t.Error("Scenario must carry both a brief and a persona")
	}

	if _, err := c.Get(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestUniqueTitles(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range New().List() {
		if seen[s.Title] {
			t.Errorf("Duplicate scenario title %q", s.Title)
		}
		seen[s.Title] = true
	}
}

func TestPersonaNeverSerialized(t *testing.T) {
	sc, err := New().Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}

	raw, err := json.Marshal(sc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), sc.SystemPersona[:40]) {
		t.Error("Persona text leaked into JSON encoding")
	}
	if strings.Contains(string(raw), "persona") {
		t.Error("Persona field leaked into JSON encoding")
	}
}

func TestDuplicateIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate scenario id")
		}
	}()
	newFromScenarios([]domain.Scenario{
		{ID: 1, Title: "a"},
		{ID: 1, Title: "b"},
	})
}
