// Package catalog provides the in-memory organization catalog that backs the
// browse and donate screens. It is an explicit object passed to whoever needs
// it rather than a process-wide dataset.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gosimple/slug"

	"github.com/jsamuelsen11/donation-service/internal/domain"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
	"github.com/jsamuelsen11/donation-service/internal/ports"
)

// ErrEmpty is reported by HealthCheck when no organizations are loaded.
var ErrEmpty = errors.New("catalog: no organizations loaded")

// Compile-time interface checks.
var (
	_ ports.OrganizationCatalog = (*Memory)(nil)
	_ ports.HealthChecker       = (*Memory)(nil)
)

// Memory is a thread-safe, in-memory [ports.OrganizationCatalog].
type Memory struct {
	mu   sync.RWMutex
	orgs map[string]organization.Organization
}

// New creates a catalog holding orgs. Organizations without an ID get the
// slug of their name. Returns a *domain.ValidationError for an invalid entry
// and domain.ErrConflict when two entries share an ID.
func New(orgs ...organization.Organization) (*Memory, error) {
	m := &Memory{orgs: make(map[string]organization.Organization, len(orgs))}
	for _, org := range orgs {
		if err := m.Add(org); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add inserts org, deriving its ID from the name when empty.
func (m *Memory) Add(org organization.Organization) error {
	if org.ID == "" {
		org.ID = slug.Make(org.Name)
	}
	if err := org.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.orgs[org.ID]; exists {
		return fmt.Errorf("organization %q: %w", org.ID, domain.ErrConflict)
	}
	m.orgs[org.ID] = org
	return nil
}

// List returns organizations ordered by name, filtered by category when
// category is non-empty.
func (m *Memory) List(_ context.Context, category organization.Category) ([]organization.Organization, error) {
	m.mu.RLock()
	out := make([]organization.Organization, 0, len(m.orgs))
	for _, org := range m.orgs {
		if category == "" || org.Category == category {
			out = append(out, org)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get returns the organization with the given ID.
func (m *Memory) Get(_ context.Context, id string) (organization.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	org, ok := m.orgs[id]
	if !ok {
		return organization.Organization{}, fmt.Errorf("organization %q: %w", id, domain.ErrNotFound)
	}
	return org, nil
}

// Name identifies the catalog in readiness results.
func (m *Memory) Name() string {
	return "catalog"
}

// HealthCheck fails when the catalog is empty, since no donation could
// then be made.
func (m *Memory) HealthCheck(_ context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.orgs) == 0 {
		return ErrEmpty
	}
	return nil
}
