package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	. "crudapp/internal/adapter/http/helper"
	. "crudapp/internal/adapter/http/validation"
	"crudapp/internal/core/domain"
	"crudapp/internal/core/model/request"
	"crudapp/internal/core/model/response"
	"crudapp/internal/core/port"
	"crudapp/internal/core/util"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	encrypted, err := util.GenerateEncrypt(params.Password)

	if err != nil {
		SendInternalError(c, "Failed to process password")
		return
	}

	active := true

	if params.Active != nil {
		active = *params.Active
	}

	user := domain.User{
		Name:              params.Name,
		Email:             params.Email,
		EncryptedPassword: encrypted,
		Age:               params.Age,
		Active:            active,
	}

	saved, err := h.svc.Create(ctx, user)

	if err != nil {
		slog.Error("User#Create", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.NewUserResponse(saved))
}

func (h *UserHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.svc.GetAll(ctx)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	data := make([]response.UserResponse, 0, len(users))

	for _, user := range users {
		data = append(data, response.NewUserResponse(user))
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	user, err := h.svc.GetByID(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}

// Update backs both PUT and PATCH: the engine merges whatever fields the
// payload supplies and leaves the rest alone.
func (h *UserHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	var params request.UpdateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	patch := domain.UserPatch{
		Name:   params.Name,
		Email:  params.Email,
		Age:    params.Age,
		Active: params.Active,
	}

	user, err := h.svc.Update(ctx, id, patch)

	if err != nil {
		slog.Error("User#Update", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		slog.Error("User#Delete", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "User deleted successfully")
}
