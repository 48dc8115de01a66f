package http

import (
	postgresdb "crudapp/internal/adapter/database/postgres"
	postgresrepo "crudapp/internal/adapter/database/postgres/repository"
	sqlitedb "crudapp/internal/adapter/database/sqlite"
	sqliterepo "crudapp/internal/adapter/database/sqlite/repository"

	"crudapp/internal/adapter/http/handler"
	"crudapp/internal/core/port"
	"crudapp/internal/core/service"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	UserService port.UserService
	TodoService port.TodoService
	AuthService port.AuthService

	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler
	AuthHandler *handler.AuthHandler
}

func NewContainer(db *sqlitedb.DB) *Container {
	return buildContainer(
		sqliterepo.NewUserRepository(db),
		sqliterepo.NewTodoRepository(db),
	)
}

func NewPostgresContainer(db *postgresdb.DB) *Container {
	return buildContainer(
		postgresrepo.NewUserRepository(db),
		postgresrepo.NewTodoRepository(db),
	)
}

func buildContainer(userRepo port.UserRepository, todoRepo port.TodoRepository) *Container {
	userSvc := service.NewUserService(userRepo)
	todoSvc := service.NewTodoService(todoRepo)
	authSvc := service.NewAuthService(userSvc)

	userHandler := handler.NewUserHandler(userSvc)
	todoHandler := handler.NewTodoHandler(todoSvc)
	authHandler := handler.NewAuthHandler(authSvc, userSvc)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		UserService: userSvc,
		TodoService: todoSvc,
		AuthService: authSvc,

		UserHandler: userHandler,
		TodoHandler: todoHandler,
		AuthHandler: authHandler,
	}
}
