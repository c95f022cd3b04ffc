package todo

import (
	"context"
	"errors"
	"time"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// memoryRepo is an in-memory TodoRepository with auto-increment ids
type memoryRepo struct {
	nextID int64
	todos  []*models.Todo
	err    error // returned by every call when set
}

var _ database.TodoRepository = (*memoryRepo)(nil)

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1}
}

var errStorage = errors.New("disk I/O error")

func (m *memoryRepo) Create(_ context.Context, description string) (*models.Todo, error) {
	if m.err != nil {
		return nil, m.err
	}
	todo := &models.Todo{ID: m.nextID, Description: description, CreatedAt: time.Now()}
	m.nextID++
	m.todos = append(m.todos, todo)
	copied := *todo
	return &copied, nil
}

func (m *memoryRepo) List(_ context.Context, filter models.ListFilter) ([]*models.Todo, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*models.Todo{}
	for _, todo := range m.todos {
		if filter.Matches(todo) {
			copied := *todo
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memoryRepo) find(id int64) (int, bool) {
	for i, todo := range m.todos {
		if todo.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (m *memoryRepo) Complete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	i, ok := m.find(id)
	if ok {
		m.todos[i].Completed = true
	}
	return ok, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	i, ok := m.find(id)
	if ok {
		m.todos = append(m.todos[:i], m.todos[i+1:]...)
	}
	return ok, nil
}

func (m *memoryRepo) UpdateDescription(_ context.Context, id int64, description string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	i, ok := m.find(id)
	if ok {
		m.todos[i].Description = description
	}
	return ok, nil
}
