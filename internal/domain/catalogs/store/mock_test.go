package store

import (
	"context"
	"strings"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
)

// mockRepo is an in-test Repository keeping records in creation order.
type mockRepo struct {
	order   []id.ID
	records map[id.ID]Store
	creates int
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[id.ID]Store)}
}

func (m *mockRepo) Create(_ context.Context, s *Store) error {
	m.creates++
	m.order = append(m.order, s.ID)
	m.records[s.ID] = *s
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, storeID id.ID) (*Store, error) {
	s, ok := m.records[storeID]
	if !ok {
		return nil, apperror.NewNotFound("store", storeID.String())
	}
	return &s, nil
}

func (m *mockRepo) Update(_ context.Context, s *Store) error {
	if _, ok := m.records[s.ID]; !ok {
		return apperror.NewNotFound("store", s.ID.String())
	}
	m.records[s.ID] = *s
	return nil
}

func (m *mockRepo) Delete(_ context.Context, storeID id.ID) error {
	delete(m.records, storeID)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*Store, error) {
	out := make([]*Store, 0, len(m.records))
	for _, storeID := range m.order {
		if s, ok := m.records[storeID]; ok {
			out = append(out, &s)
		}
	}
	return out, nil
}

func (m *mockRepo) FindByLocation(ctx context.Context, substring string) ([]*Store, error) {
	all, _ := m.List(ctx)
	var out []*Store
	for _, s := range all {
		if strings.Contains(s.Location, substring) {
			out = append(out, s)
		}
	}
	return out, nil
}
