package port

import "context"

// Store is the persistence contract every resource repository satisfies.
// Identifiers are store-assigned integers; GetAll returns rows in
// insertion order.
type Store[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	GetByID(ctx context.Context, id int) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int) error
}
