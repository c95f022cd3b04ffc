// Package todo implements the todo operations on top of a TodoRepository
package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// Service defines all todo-related operations
type Service interface {
	// Read operations
	List(ctx context.Context, req ListRequest) (*ListResult, error)

	// Write operations
	Add(ctx context.Context, description string) (*models.Todo, error)
	Complete(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, req UpdateRequest) error
}

// ListRequest carries the two independent list flags
type ListRequest struct {
	Completed bool
	Pending   bool
}

// Filter resolves the flags into the filter to apply
func (r ListRequest) Filter() models.ListFilter {
	return ResolveFilter(r.Completed, r.Pending)
}

// ListResult holds the listed todos, ordered by id
type ListResult struct {
	Filter models.ListFilter
	Todos  []*models.Todo
	Total  int
}

// UpdateRequest encapsulates a description change
type UpdateRequest struct {
	ID          int64
	Description string
}

// ResolveFilter maps the completed/pending flags to a filter. Setting only
// one of them narrows the listing; neither or both lists everything.
func ResolveFilter(completed, pending bool) models.ListFilter {
	switch {
	case completed && !pending:
		return models.FilterCompleted
	case pending && !completed:
		return models.FilterPending
	default:
		return models.FilterAll
	}
}

// service implements Service interface
type service struct {
	repo   database.TodoRepository
	logger *slog.Logger
}

// NewService creates a new todo service. A nil logger falls back to slog.Default().
func NewService(repo database.TodoRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Add creates a pending todo. The description is stored as given.
func (s *service) Add(ctx context.Context, description string) (*models.Todo, error) {
	todo, err := s.repo.Create(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to add todo: %w", err)
	}

	s.logger.Debug("todo added", "id", todo.ID)
	return todo, nil
}

// List returns the todos selected by the request flags
func (s *service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	filter := req.Filter()

	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	s.logger.Debug("todos listed", "filter", filter.String(), "count", len(todos))
	return &ListResult{
		Filter: filter,
		Todos:  todos,
		Total:  len(todos),
	}, nil
}

// Complete marks a todo as completed. Completing twice is not an error.
func (s *service) Complete(ctx context.Context, id int64) error {
	found, err := s.repo.Complete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to complete todo: %w", err)
	}
	if !found {
		return ErrTodoNotFound
	}

	s.logger.Debug("todo completed", "id", id)
	return nil
}

// Delete removes a todo
func (s *service) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !found {
		return ErrTodoNotFound
	}

	s.logger.Debug("todo deleted", "id", id)
	return nil
}

// Update replaces a todo's description
func (s *service) Update(ctx context.Context, req UpdateRequest) error {
	found, err := s.repo.UpdateDescription(ctx, req.ID, req.Description)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if !found {
		return ErrTodoNotFound
	}

	s.logger.Debug("todo updated", "id", req.ID)
	return nil
}
