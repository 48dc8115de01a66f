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

var userColumns = []string{"id", "name", "email", "encrypted_password", "age", "active", "created_at", "updated_at"}

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.EncryptedPassword,
		&user.Age,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	return user, err
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns(userColumns[1:]...).
		Values(user.Name, user.Email, user.EncryptedPassword, user.Age, user.Active, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id, name, email, encrypted_password, age, active, created_at, updated_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	saved, err := scanUser(ur.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return saved, nil
}

func (ur *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("encrypted_password", user.EncryptedPassword).
		Set("age", user.Age).
		Set("active", user.Active).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING id, name, email, encrypted_password, age, active, created_at, updated_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	saved, err := scanUser(ur.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("user %d: %w", user.ID, domain.ErrNotFound)
		}

		if database.IsUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}

		slog.Error("Error updating user", "error", err)
		return domain.User{}, err
	}

	return saved, nil
}

func (ur *UserRepository) GetByID(ctx context.Context, id int) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	user, err := scanUser(ur.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}

		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		OrderBy("id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)

	for rows.Next() {
		user, err := scanUser(rows)

		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, rows.Err()
}

func (ur *UserRepository) Delete(ctx context.Context, id int) error {
	stmt, args, err := ur.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	tag, err := ur.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting user", "error", err)
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	user, err := scanUser(ur.db.QueryRow(ctx, stmt, args...))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}

		return domain.User{}, err
	}

	return user, nil
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

	if err := ur.db.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}
