package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"crudapp/internal/adapter/database/sqlite"
	"crudapp/internal/core/domain"
	"crudapp/internal/core/port"
)

type TodoRepository struct {
	db      *sqlite.DB
	scanner *sqlite.Scanner
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{
		db:      db,
		scanner: sqlite.NewScanner(),
	}
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	tx, err := tr.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return domain.Todo{}, err
	}
	defer tx.Rollback()

	query := tr.db.QueryBuilder.Insert("todos").
		Columns("title", "description", "completed", "created_at", "updated_at").
		Values(todo.Title, todo.Description, todo.Completed, todo.CreatedAt, todo.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error creating todo", "error", err, "title", todo.Title)
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.Todo{}, err
	}

	saved, err := tr.getByIDTx(ctx, tx, int(id))

	if err != nil {
		return domain.Todo{}, err
	}

	return saved, tx.Commit()
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	tx, err := tr.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return domain.Todo{}, err
	}
	defer tx.Rollback()

	query := tr.db.QueryBuilder.Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("completed", todo.Completed).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"id": todo.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating todo", "error", err)
		return domain.Todo{}, err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return domain.Todo{}, err
	}

	if rowsAffected == 0 {
		return domain.Todo{}, fmt.Errorf("todo %d: %w", todo.ID, domain.ErrNotFound)
	}

	saved, err := tr.getByIDTx(ctx, tx, todo.ID)

	if err != nil {
		return domain.Todo{}, err
	}

	return saved, tx.Commit()
}

func (tr *TodoRepository) GetByID(ctx context.Context, id int) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}
	defer rows.Close()

	var data domain.Todo

	if err := tr.scanner.ScanRowToStruct(rows, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
		}

		slog.Error("Error getting todo by id", "error", err)
		return domain.Todo{}, err
	}

	return data, nil
}

func (tr *TodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	query := tr.db.QueryBuilder.Select("*").
		From("todos").
		OrderBy("id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)

	if err := tr.scanner.ScanRowsToSlice(rows, &todos); err != nil {
		return nil, err
	}

	return todos, nil
}

func (tr *TodoRepository) Delete(ctx context.Context, id int) error {
	query := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting todo", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (tr *TodoRepository) getByIDTx(ctx context.Context, tx *sql.Tx, id int) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tx.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}
	defer rows.Close()

	var data domain.Todo

	if err := tr.scanner.ScanRowToStruct(rows, &data); err != nil {
		return domain.Todo{}, err
	}

	return data, nil
}
