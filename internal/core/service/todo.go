package service

import (
	"context"
	"log/slog"
	"time"

	"crudapp/internal/core/domain"
	"crudapp/internal/core/port"
)

type TodoService struct {
	repo   port.TodoRepository
	engine *Engine[domain.Todo, domain.TodoPatch]
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	svc := &TodoService{repo: repo}

	// Todos carry no unique key, so the engine runs without uniqueness
	// hooks.
	svc.engine = NewEngine(port.Store[domain.Todo](repo), Hooks[domain.Todo, domain.TodoPatch]{
		Merge: func(todo *domain.Todo, patch domain.TodoPatch) {
			todo.Merge(patch)
		},
		Stamp: func(todo *domain.Todo, now time.Time, created bool) {
			if created {
				todo.CreatedAt = now
			}
			todo.UpdatedAt = now
		},
	})

	return svc
}

func (ts *TodoService) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	todo.Completed = false

	saved, err := ts.engine.Create(ctx, todo)

	if err != nil {
		slog.Error("Todo#Create", "error", err, "title", todo.Title)
		return domain.Todo{}, err
	}

	return saved, nil
}

func (ts *TodoService) GetByID(ctx context.Context, id int) (domain.Todo, error) {
	return ts.engine.GetByID(ctx, id)
}

func (ts *TodoService) GetAll(ctx context.Context) ([]domain.Todo, error) {
	return ts.engine.GetAll(ctx)
}

func (ts *TodoService) Update(ctx context.Context, id int, patch domain.TodoPatch) (domain.Todo, error) {
	return ts.engine.Update(ctx, id, patch)
}

// Toggle flips the completed flag in one read-modify-write so callers
// never need to know the current state.
func (ts *TodoService) Toggle(ctx context.Context, id int) (domain.Todo, error) {
	todo, err := ts.engine.GetByID(ctx, id)

	if err != nil {
		return domain.Todo{}, err
	}

	completed := !todo.Completed

	return ts.engine.Update(ctx, id, domain.TodoPatch{Completed: &completed})
}

func (ts *TodoService) Delete(ctx context.Context, id int) error {
	return ts.engine.Delete(ctx, id)
}
