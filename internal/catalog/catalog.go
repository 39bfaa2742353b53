// Package catalog holds the built-in negotiation scenario catalog.
//
// The catalog is a compile-time constant: scenarios are only ever replaced
// wholesale on redeploy, so there is no runtime storage and no cold-start
// seeding to coordinate.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akorchagin/procsim/internal/domain"
)

// ErrNotFound is returned when a scenario ID is not in the catalog.
var ErrNotFound = errors.New("scenario not found")

// Catalog provides read-only access to the scenario set.
type Catalog struct {
	byID    map[int]*domain.Scenario
	ordered []domain.ScenarioSummary
}

// New returns a catalog over the built-in scenario set.
func New() *Catalog {
	return newFromScenarios(scenarios)
}

func newFromScenarios(set []domain.Scenario) *Catalog {
	c := &Catalog{byID: make(map[int]*domain.Scenario, len(set))}
	for i := range set {
		sc := &set[i]
		if _, dup := c.byID[sc.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate scenario id %d", sc.ID))
		}
		c.byID[sc.ID] = sc
		c.ordered = append(c.ordered, sc.Summary())
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		if c.ordered[i].Category != c.ordered[j].Category {
			return c.ordered[i].Category < c.ordered[j].Category
		}
		return c.ordered[i].Title < c.ordered[j].Title
	})
	return c
}

// List returns scenario summaries ordered by category, then title.
func (c *Catalog) List() []domain.ScenarioSummary {
	out := make([]domain.ScenarioSummary, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get returns the scenario with the given ID, or ErrNotFound.
func (c *Catalog) Get(id int) (*domain.Scenario, error) {
	sc, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("scenario %d: %w", id, ErrNotFound)
	}
	return sc, nil
}

// Len returns the number of scenarios in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}
