package port

import (
	"context"

	"crudapp/internal/core/domain"
)

type TodoRepository interface {
	Store[domain.Todo]
}

type TodoService interface {
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	GetByID(ctx context.Context, id int) (domain.Todo, error)
	GetAll(ctx context.Context) ([]domain.Todo, error)
	Update(ctx context.Context, id int, patch domain.TodoPatch) (domain.Todo, error)
	Toggle(ctx context.Context, id int) (domain.Todo, error)
	Delete(ctx context.Context, id int) error
}
