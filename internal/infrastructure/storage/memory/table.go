package memory

import (
	"sync"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
)

// table keeps rows of one entity type in insertion order.
// Rows are stored by value, so callers never share memory with the table.
type table[T any] struct {
	entity string

	mu    sync.RWMutex
	order []id.ID
	rows  map[id.ID]T
}

func newTable[T any](entity string) *table[T] {
	return &table[T]{
		entity: entity,
		rows:   make(map[id.ID]T),
	}
}

func (t *table[T]) insert(key id.ID, row T) error {
	return t.insertChecked(key, row, nil)
}

// insertChecked runs check against every other row under the write lock,
// so uniqueness rules hold under concurrent writers.
func (t *table[T]) insertChecked(key id.ID, row T, check func(other T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[key]; exists {
		return apperror.NewConflict(t.entity + " with this id already exists").WithDetail("id", key.String())
	}
	if err := t.checkOthers(key, check); err != nil {
		return err
	}
	t.order = append(t.order, key)
	t.rows[key] = row
	return nil
}

func (t *table[T]) get(key id.ID) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[key]
	if !ok {
		return row, apperror.NewNotFound(t.entity, key.String())
	}
	return row, nil
}

func (t *table[T]) has(key id.ID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.rows[key]
	return ok
}

func (t *table[T]) replace(key id.ID, row T) error {
	return t.replaceChecked(key, row, nil)
}

func (t *table[T]) replaceChecked(key id.ID, row T, check func(other T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return apperror.NewNotFound(t.entity, key.String())
	}
	if err := t.checkOthers(key, check); err != nil {
		return err
	}
	t.rows[key] = row
	return nil
}

// checkOthers must be called with the write lock held.
func (t *table[T]) checkOthers(key id.ID, check func(other T) error) error {
	if check == nil {
		return nil
	}
	for k, other := range t.rows {
		if k == key {
			continue
		}
		if err := check(other); err != nil {
			return err
		}
	}
	return nil
}

func (t *table[T]) remove(key id.ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return apperror.NewNotFound(t.entity, key.String())
	}
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// scan returns rows accepted by keep, in insertion order. A nil keep accepts all.
func (t *table[T]) scan(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, key := range t.order {
		row := t.rows[key]
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// load replaces the whole content of the table.
func (t *table[T]) load(rows []T, key func(T) id.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.order = make([]id.ID, 0, len(rows))
	t.rows = make(map[id.ID]T, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, dup := t.rows[k]; !dup {
			t.order = append(t.order, k)
		}
		t.rows[k] = row
	}
}

// pointers converts rows to pointers to fresh copies.
func pointers[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		row := rows[i]
		out[i] = &row
	}
	return out
}
