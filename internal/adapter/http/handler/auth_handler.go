package handler

import (
	"log/slog"
	"net/http"

	. "crudapp/internal/adapter/http/helper"
	. "crudapp/internal/adapter/http/validation"
	"crudapp/internal/core/model/request"
	"crudapp/internal/core/model/response"
	"crudapp/internal/core/port"
	"crudapp/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc   port.AuthService
	users port.UserService
}

func NewAuthHandler(svc port.AuthService, users port.UserService) *AuthHandler {
	return &AuthHandler{
		svc:   svc,
		users: users,
	}
}

func (a *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.SignUpRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Register(ctx, &params)

	if err != nil {
		slog.Error("Auth#SignUp", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.NewUserResponse(*user))
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Authenticate(ctx, &params)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	accessToken, err := auth.CreateJwtTokenForUser(user.ID)

	if err != nil {
		slog.Error("Auth#Login", "create_token", err)
		SendUnauthorizedError(c, "Invalid email or password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         response.NewUserResponse(*user),
		"access_token": accessToken,
	})
}

// Me returns the account behind the bearer token.
func (a *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetInt("x-user-id")

	user, err := a.users.GetByID(ctx, userID)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}
