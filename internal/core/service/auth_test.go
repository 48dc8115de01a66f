package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "crudapp/pkg/test"

	"crudapp/internal/adapter/database/sqlite/repository"
	"crudapp/internal/core/domain"
	"crudapp/internal/core/model/request"
	"crudapp/internal/core/service"
	"crudapp/internal/core/util"
)

type AuthServiceTestSuite struct {
	suite.Suite
	svc   *service.AuthService
	users *service.UserService
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.users = service.NewUserService(repository.NewUserRepository(db))
	s.svc = service.NewAuthService(s.users)
}

func TestAuthServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	age := 25

	user, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "secret-password",
		Age:      &age,
	})

	Expect(err).To(BeNil())
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Active).To(BeTrue())
	Expect(user.EncryptedPassword).NotTo(Equal("secret-password"))
	Expect(util.ComparePassword("secret-password", user.EncryptedPassword)).To(Succeed())
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Name:     "First",
		Email:    "dup@example.com",
		Password: "secret-password",
	})
	Expect(err).To(BeNil())

	_, err = s.svc.Register(context.Background(), &request.SignUpRequest{
		Name:     "Second",
		Email:    "dup@example.com",
		Password: "other-password",
	})

	Expect(err).To(MatchError(domain.ErrConflict))
}

func (s *AuthServiceTestSuite) TestAuthenticate_Success() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Name:     "Login User",
		Email:    "login@example.com",
		Password: "secret-password",
	})
	Expect(err).To(BeNil())

	user, err := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "login@example.com",
		Password: "secret-password",
	})

	Expect(err).To(BeNil())
	Expect(user.Email).To(Equal("login@example.com"))
}

func (s *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Name:     "Login User",
		Email:    "login@example.com",
		Password: "secret-password",
	})
	Expect(err).To(BeNil())

	_, err = s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})

	Expect(err).To(MatchError(domain.ErrUnauthorized))
}

func (s *AuthServiceTestSuite) TestAuthenticate_UnknownEmail() {
	_, err := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})

	Expect(err).To(MatchError(domain.ErrUnauthorized))
}

// The unknown-email and wrong-password failures must be the same error so
// responses cannot be used to probe which emails are registered.
func (s *AuthServiceTestSuite) TestAuthenticate_FailuresAreIndistinguishable() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Name:     "Probe Target",
		Email:    "target@example.com",
		Password: "secret-password",
	})
	Expect(err).To(BeNil())

	_, wrongPassword := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "target@example.com",
		Password: "wrong",
	})
	_, unknownEmail := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "absent@example.com",
		Password: "wrong",
	})

	Expect(wrongPassword).To(Equal(unknownEmail))
}
