package service

import (
	"context"
	"time"

	"crudapp/internal/core/port"
)

// Hooks injects the resource-specific behavior into the engine: uniqueness
// enforcement, patch merging and timestamp stamping. Everything else about
// the lifecycle is shared, which keeps the user and todo engines
// structurally identical.
type Hooks[T any, P any] struct {
	// BeforeCreate enforces uniqueness invariants before persisting a new
	// entity. Must return domain.ErrConflict (wrapped or bare) on
	// violation. Nil when the resource has no unique key.
	BeforeCreate func(ctx context.Context, entity *T) error

	// BeforeUpdate enforces uniqueness against an incoming patch, given
	// the current entity and its identifier. Nil when not applicable.
	BeforeUpdate func(ctx context.Context, current T, patch P, id int) error

	// Merge overwrites only the fields present in the patch.
	Merge func(entity *T, patch P)

	// Stamp assigns timestamps. created is true on first persist.
	Stamp func(entity *T, now time.Time, created bool)
}

// Engine owns the create/read/update-merge/delete lifecycle for one
// resource kind backed by a Store.
type Engine[T any, P any] struct {
	store port.Store[T]
	hooks Hooks[T, P]
}

func NewEngine[T any, P any](store port.Store[T], hooks Hooks[T, P]) *Engine[T, P] {
	return &Engine[T, P]{store: store, hooks: hooks}
}

func (e *Engine[T, P]) Create(ctx context.Context, entity T) (T, error) {
	if e.hooks.BeforeCreate != nil {
		if err := e.hooks.BeforeCreate(ctx, &entity); err != nil {
			var zero T
			return zero, err
		}
	}

	e.hooks.Stamp(&entity, time.Now(), true)

	return e.store.Create(ctx, entity)
}

func (e *Engine[T, P]) GetByID(ctx context.Context, id int) (T, error) {
	return e.store.GetByID(ctx, id)
}

func (e *Engine[T, P]) GetAll(ctx context.Context) ([]T, error) {
	return e.store.GetAll(ctx)
}

// Update applies a merge, not a replace: fields absent from the patch keep
// their current value. Full updates are just merges that happen to supply
// every field.
func (e *Engine[T, P]) Update(ctx context.Context, id int, patch P) (T, error) {
	var zero T

	current, err := e.store.GetByID(ctx, id)

	if err != nil {
		return zero, err
	}

	if e.hooks.BeforeUpdate != nil {
		if err := e.hooks.BeforeUpdate(ctx, current, patch, id); err != nil {
			return zero, err
		}
	}

	e.hooks.Merge(&current, patch)
	e.hooks.Stamp(&current, time.Now(), false)

	return e.store.Update(ctx, current)
}

func (e *Engine[T, P]) Delete(ctx context.Context, id int) error {
	if _, err := e.store.GetByID(ctx, id); err != nil {
		return err
	}

	return e.store.Delete(ctx, id)
}
