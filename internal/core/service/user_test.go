package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "crudapp/pkg/test"

	"crudapp/internal/adapter/database/sqlite/repository"
	"crudapp/internal/core/domain"
	"crudapp/internal/core/port"
	"crudapp/internal/core/service"
)

type UserServiceTestSuite struct {
	suite.Suite
	svc  *service.UserService
	repo port.UserRepository
}

func (s *UserServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.repo = repository.NewUserRepository(db)
	s.svc = service.NewUserService(s.repo)
}

func TestUserServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) createUser(name, email string) domain.User {
	user, err := s.svc.Create(context.Background(), domain.User{
		Name:              name,
		Email:             email,
		EncryptedPassword: "hashed-password",
		Active:            true,
	})

	Expect(err).To(BeNil())

	return user
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	age := 30

	user, err := s.svc.Create(context.Background(), domain.User{
		Name:              "Test User",
		Email:             "test@example.com",
		EncryptedPassword: "hashed-password",
		Age:               &age,
		Active:            true,
	})

	Expect(err).To(BeNil())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Name).To(Equal("Test User"))
	Expect(user.Email).To(Equal("test@example.com"))
	Expect(user.Age).NotTo(BeNil())
	Expect(*user.Age).To(Equal(30))
	Expect(user.Active).To(BeTrue())
	Expect(user.CreatedAt).NotTo(BeZero())
	Expect(user.UpdatedAt).NotTo(BeZero())
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	s.createUser("First", "dup@example.com")

	_, err := s.svc.Create(context.Background(), domain.User{
		Name:              "Second",
		Email:             "dup@example.com",
		EncryptedPassword: "hashed-password",
	})

	Expect(err).To(MatchError(domain.ErrConflict))
}

func (s *UserServiceTestSuite) TestGetByID_NotFound() {
	_, err := s.svc.GetByID(context.Background(), 9999)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserServiceTestSuite) TestGetAll_OrderedByID() {
	first := s.createUser("Alpha", "alpha@example.com")
	second := s.createUser("Beta", "beta@example.com")

	users, err := s.svc.GetAll(context.Background())

	Expect(err).To(BeNil())
	Expect(users).To(HaveLen(2))
	Expect(users[0].ID).To(Equal(first.ID))
	Expect(users[1].ID).To(Equal(second.ID))
}

func (s *UserServiceTestSuite) TestUpdate_EmptyPatchKeepsEverything() {
	user := s.createUser("Keep Me", "keep@example.com")

	updated, err := s.svc.Update(context.Background(), user.ID, domain.UserPatch{})

	Expect(err).To(BeNil())
	Expect(updated.Name).To(Equal("Keep Me"))
	Expect(updated.Email).To(Equal("keep@example.com"))
	Expect(updated.Active).To(BeTrue())
}

func (s *UserServiceTestSuite) TestUpdate_NameOnlyPreservesOtherFields() {
	user := s.createUser("Old Name", "stable@example.com")

	newName := "New Name"
	updated, err := s.svc.Update(context.Background(), user.ID, domain.UserPatch{Name: &newName})

	Expect(err).To(BeNil())
	Expect(updated.Name).To(Equal("New Name"))
	Expect(updated.Email).To(Equal("stable@example.com"))
	Expect(updated.Active).To(BeTrue())
}

func (s *UserServiceTestSuite) TestUpdate_EmailTakenByOtherUser() {
	s.createUser("Holder", "taken@example.com")
	user := s.createUser("Mover", "mover@example.com")

	taken := "taken@example.com"
	_, err := s.svc.Update(context.Background(), user.ID, domain.UserPatch{Email: &taken})

	Expect(err).To(MatchError(domain.ErrConflict))
}

func (s *UserServiceTestSuite) TestUpdate_SameEmailIsAllowed() {
	user := s.createUser("Same Email", "same@example.com")

	same := "same@example.com"
	updated, err := s.svc.Update(context.Background(), user.ID, domain.UserPatch{Email: &same})

	Expect(err).To(BeNil())
	Expect(updated.Email).To(Equal("same@example.com"))
}

func (s *UserServiceTestSuite) TestUpdate_DeactivateUser() {
	user := s.createUser("Active User", "active@example.com")

	inactive := false
	updated, err := s.svc.Update(context.Background(), user.ID, domain.UserPatch{Active: &inactive})

	Expect(err).To(BeNil())
	Expect(updated.Active).To(BeFalse())
}

func (s *UserServiceTestSuite) TestUpdate_NotFound() {
	name := "Ghost"
	_, err := s.svc.Update(context.Background(), 9999, domain.UserPatch{Name: &name})

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserServiceTestSuite) TestDelete_Success() {
	user := s.createUser("Doomed", "doomed@example.com")

	err := s.svc.Delete(context.Background(), user.ID)
	Expect(err).To(BeNil())

	_, err = s.svc.GetByID(context.Background(), user.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserServiceTestSuite) TestDelete_TwiceReturnsNotFound() {
	user := s.createUser("Twice", "twice@example.com")

	Expect(s.svc.Delete(context.Background(), user.ID)).To(Succeed())

	err := s.svc.Delete(context.Background(), user.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserServiceTestSuite) TestExistsByEmail() {
	s.createUser("Exists", "exists@example.com")

	exists, err := s.svc.ExistsByEmail(context.Background(), "exists@example.com")
	Expect(err).To(BeNil())
	Expect(exists).To(BeTrue())

	exists, err = s.svc.ExistsByEmail(context.Background(), "absent@example.com")
	Expect(err).To(BeNil())
	Expect(exists).To(BeFalse())
}
