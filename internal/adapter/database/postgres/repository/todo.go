package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	database "crudapp/internal/adapter/database/postgres"
	"crudapp/internal/core/domain"
	"crudapp/internal/core/port"
)

var todoColumns = []string{"id", "title", "description", "completed", "created_at", "updated_at"}

type TodoRepository struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func scanTodo(row pgx.Row) (domain.Todo, error) {
	var todo domain.Todo

	err := row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	return todo, err
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Insert("todos").
		Columns(todoColumns[1:]...).
		Values(todo.Title, todo.Description, todo.Completed, todo.CreatedAt, todo.UpdatedAt).
		Suffix("RETURNING id, title, description, completed, created_at, updated_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	saved, err := scanTodo(tr.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		slog.Error("Error creating todo", "error", err, "title", todo.Title)
		return domain.Todo{}, err
	}

	return saved, nil
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("completed", todo.Completed).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"id": todo.ID}).
		Suffix("RETURNING id, title, description, completed, created_at, updated_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	saved, err := scanTodo(tr.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, fmt.Errorf("todo %d: %w", todo.ID, domain.ErrNotFound)
		}

		slog.Error("Error updating todo", "error", err)
		return domain.Todo{}, err
	}

	return saved, nil
}

func (tr *TodoRepository) GetByID(ctx context.Context, id int) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	todo, err := scanTodo(tr.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
		}

		return domain.Todo{}, err
	}

	return todo, nil
}

func (tr *TodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	query := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		OrderBy("id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)

	for rows.Next() {
		todo, err := scanTodo(rows)

		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (tr *TodoRepository) Delete(ctx context.Context, id int) error {
	stmt, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	tag, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting todo", "error", err)
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
