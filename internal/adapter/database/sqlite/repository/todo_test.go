package repository_test

import (
	"context"
	"testing"

	. "crudapp/pkg/test"

	"crudapp/internal/adapter/database/sqlite/repository"
	"crudapp/internal/core/domain"
	"crudapp/internal/core/port"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TodoRepositoryTestSuite struct {
	suite.Suite
	repo port.TodoRepository
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.repo = repository.NewTodoRepository(db)
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) TestRepository_CreateTodo_Success() {
	todo, err := s.repo.Create(context.Background(), domain.Todo{
		Title:       "Buy milk",
		Description: "2 liters",
	})

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), todo.ID)
	assert.Equal(s.T(), "Buy milk", todo.Title)
	assert.Equal(s.T(), "2 liters", todo.Description)
	assert.False(s.T(), todo.Completed)
}

func (s *TodoRepositoryTestSuite) TestRepository_DuplicateTitlesAllowed() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, domain.Todo{Title: "Same title"})
	assert.NoError(s.T(), err)

	_, err = s.repo.Create(ctx, domain.Todo{Title: "Same title"})
	assert.NoError(s.T(), err)

	todos, err := s.repo.GetAll(ctx)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), todos, 2)
}

func (s *TodoRepositoryTestSuite) TestRepository_Update_Success() {
	ctx := context.Background()

	todo, err := s.repo.Create(ctx, domain.Todo{Title: "Before", Description: "keep me"})
	assert.NoError(s.T(), err)

	todo.Title = "After"
	todo.Completed = true

	updated, err := s.repo.Update(ctx, todo)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "After", updated.Title)
	assert.Equal(s.T(), "keep me", updated.Description)
	assert.True(s.T(), updated.Completed)
}

func (s *TodoRepositoryTestSuite) TestRepository_Update_NotFound() {
	_, err := s.repo.Update(context.Background(), domain.Todo{ID: 9999, Title: "Ghost"})

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), 9999)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_Delete() {
	ctx := context.Background()

	todo, err := s.repo.Create(ctx, domain.Todo{Title: "Delete me"})
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.repo.Delete(ctx, todo.ID))

	err = s.repo.Delete(ctx, todo.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_GetAll_OrderedByID() {
	ctx := context.Background()

	first, _ := s.repo.Create(ctx, domain.Todo{Title: "First"})
	second, _ := s.repo.Create(ctx, domain.Todo{Title: "Second"})

	todos, err := s.repo.GetAll(ctx)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), todos, 2)
	assert.Equal(s.T(), first.ID, todos[0].ID)
	assert.Equal(s.T(), second.ID, todos[1].ID)
}
