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

type UserRepository struct {
	db      *sqlite.DB
	scanner *sqlite.Scanner
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{
		db:      db,
		scanner: sqlite.NewScanner(),
	}
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	// Insert and read-back run on the same connection.
	tx, err := ur.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return domain.User{}, err
	}
	defer tx.Rollback()

	query := ur.db.QueryBuilder.Insert("users").
		Columns("name", "email", "encrypted_password", "age", "active", "created_at", "updated_at").
		Values(user.Name, user.Email, user.EncryptedPassword, user.Age, user.Active, user.CreatedAt, user.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.User{}, err
	}

	saved, err := ur.getByIDTx(ctx, tx, int(id))

	if err != nil {
		return domain.User{}, err
	}

	return saved, tx.Commit()
}

func (ur *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	tx, err := ur.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return domain.User{}, err
	}
	defer tx.Rollback()

	query := ur.db.QueryBuilder.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("encrypted_password", user.EncryptedPassword).
		Set("age", user.Age).
		Set("active", user.Active).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}

		slog.Error("Error updating user", "error", err)
		return domain.User{}, err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return domain.User{}, err
	}

	if rowsAffected == 0 {
		return domain.User{}, fmt.Errorf("user %d: %w", user.ID, domain.ErrNotFound)
	}

	saved, err := ur.getByIDTx(ctx, tx, user.ID)

	if err != nil {
		return domain.User{}, err
	}

	return saved, tx.Commit()
}

func (ur *UserRepository) GetByID(ctx context.Context, id int) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.User{}, err
	}
	defer rows.Close()

	var data domain.User

	if err := ur.scanner.ScanRowToStruct(rows, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}

		slog.Error("Error getting user by id", "error", err)
		return domain.User{}, err
	}

	return data, nil
}

func (ur *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	query := ur.db.QueryBuilder.Select("*").
		From("users").
		OrderBy("id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)

	if err := ur.scanner.ScanRowsToSlice(rows, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (ur *UserRepository) Delete(ctx context.Context, id int) error {
	query := ur.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := ur.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting user", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.User{}, err
	}
	defer rows.Close()

	var data domain.User

	if err := ur.scanner.ScanRowToStruct(rows, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}

		return domain.User{}, err
	}

	return data, nil
}

func (ur *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := ur.db.QueryBuilder.Select("COUNT(1)").
		From("users").
		Where(sq.Eq{"email": email})

	stmt, args, err := query.ToSql()

	if err != nil {
		return false, err
	}

	var count int

	if err := ur.db.QueryRowContext(ctx, stmt, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (ur *UserRepository) getByIDTx(ctx context.Context, tx *sql.Tx, id int) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := tx.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.User{}, err
	}
	defer rows.Close()

	var data domain.User

	if err := ur.scanner.ScanRowToStruct(rows, &data); err != nil {
		return domain.User{}, err
	}

	return data, nil
}
