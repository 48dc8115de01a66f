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

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc port.TodoService
}

func NewTodoHandler(svc port.TodoService) *TodoHandler {
	return &TodoHandler{
		svc: svc,
	}
}

func (h *TodoHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	todo := domain.Todo{
		Title:       params.Title,
		Description: params.Description,
	}

	saved, err := h.svc.Create(ctx, todo)

	if err != nil {
		slog.Error("Todo#Create", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.NewTodoResponse(saved))
}

func (h *TodoHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	todos, err := h.svc.GetAll(ctx)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, response.NewTodoResponse(todo))
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *TodoHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	todo, err := h.svc.GetByID(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}

func (h *TodoHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	var params request.UpdateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	patch := domain.TodoPatch{
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	}

	todo, err := h.svc.Update(ctx, id, patch)

	if err != nil {
		slog.Error("Todo#Update", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}

func (h *TodoHandler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	todo, err := h.svc.Toggle(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}

func (h *TodoHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid identifier")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		slog.Error("Todo#Delete", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Todo deleted successfully")
}
