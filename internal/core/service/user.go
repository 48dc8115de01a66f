package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crudapp/internal/core/domain"
	"crudapp/internal/core/port"
)

type UserService struct {
	repo   port.UserRepository
	engine *Engine[domain.User, domain.UserPatch]
}

func NewUserService(repo port.UserRepository) *UserService {
	svc := &UserService{repo: repo}

	svc.engine = NewEngine(port.Store[domain.User](repo), Hooks[domain.User, domain.UserPatch]{
		BeforeCreate: svc.checkEmailFree,
		BeforeUpdate: svc.checkEmailNotTaken,
		Merge: func(user *domain.User, patch domain.UserPatch) {
			user.Merge(patch)
		},
		Stamp: func(user *domain.User, now time.Time, created bool) {
			if created {
				user.CreatedAt = now
			}
			user.UpdatedAt = now
		},
	})

	return svc
}

// checkEmailFree is a friendly pre-check only; the unique index on
// users.email is what actually rejects concurrent duplicates.
func (us *UserService) checkEmailFree(ctx context.Context, user *domain.User) error {
	exists, err := us.repo.ExistsByEmail(ctx, user.Email)

	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("user with email %s: %w", user.Email, domain.ErrConflict)
	}

	return nil
}

// checkEmailNotTaken rejects an update whose email is already held by a
// different user. Keeping the current email is always allowed.
func (us *UserService) checkEmailNotTaken(ctx context.Context, current domain.User, patch domain.UserPatch, id int) error {
	if patch.Email == nil || *patch.Email == current.Email {
		return nil
	}

	holder, err := us.repo.GetByEmail(ctx, *patch.Email)

	if err == nil && holder.ID != id {
		return fmt.Errorf("email %s is already taken: %w", *patch.Email, domain.ErrConflict)
	}

	return nil
}

func (us *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	saved, err := us.engine.Create(ctx, user)

	if err != nil {
		slog.Error("User#Create", "error", err)
		return domain.User{}, err
	}

	return saved, nil
}

func (us *UserService) GetByID(ctx context.Context, id int) (domain.User, error) {
	return us.engine.GetByID(ctx, id)
}

func (us *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return us.engine.GetAll(ctx)
}

func (us *UserService) Update(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error) {
	return us.engine.Update(ctx, id, patch)
}

func (us *UserService) Delete(ctx context.Context, id int) error {
	return us.engine.Delete(ctx, id)
}

func (us *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return us.repo.GetByEmail(ctx, email)
}

func (us *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return us.repo.ExistsByEmail(ctx, email)
}
