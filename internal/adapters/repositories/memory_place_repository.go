package repositories

import (
	"context"
	"fmt"
	"greatcircle-service/internal/domain"
	"slices"
	"strings"
	"sync"
)

// MemoryPlaceRepository is a thread-safe, in-memory PlaceRepository used when
// no database is configured.
type MemoryPlaceRepository struct {
	mu     sync.RWMutex
	places map[string]domain.Place
}

func NewMemoryPlaceRepository() *MemoryPlaceRepository {
	return &MemoryPlaceRepository{places: make(map[string]domain.Place)}
}

func (m *MemoryPlaceRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Place, 0, len(m.places))
	for _, p := range m.places {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Place) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *MemoryPlaceRepository) GetPlaces(ctx context.Context, names []string) (map[string]domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]domain.Place, len(names))
	for _, n := range uniqueNames(names) {
		if p, ok := m.places[n]; ok {
			out[n] = p
		}
	}
	return out, nil
}

func (m *MemoryPlaceRepository) PutPlaces(ctx context.Context, places []domain.Place) error {
	for _, p := range places {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("put places name=%q: %w", p.Name, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range places {
		p.Name = normalizeName(p.Name)
		m.places[p.Name] = p
	}
	return nil
}
