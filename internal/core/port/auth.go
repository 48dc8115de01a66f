package port

import (
	"context"

	"crudapp/internal/core/domain"
	"crudapp/internal/core/model/request"
)

type AuthService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error)
}
