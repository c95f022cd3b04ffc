// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/todo/internal/models"
)

// TodoRepository defines the storage operations behind the todo service.
// Every method maps to exactly one SQL statement. The mutating methods
// report whether a row with the given id existed.
type TodoRepository interface {
	Create(ctx context.Context, description string) (*models.Todo, error)
	List(ctx context.Context, filter models.ListFilter) ([]*models.Todo, error)
	Complete(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpdateDescription(ctx context.Context, id int64, description string) (bool, error)
}
