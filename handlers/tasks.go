package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/middleware"
	"github.com/taskforge/taskforge/models"
	"github.com/taskforge/taskforge/service"
)

// TaskHandler exposes CRUD over the caller's own tasks. Identity comes
// from the token gate; the handler never trusts ids from the body.
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// List godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Task
// @Failure 401 {object} map[string]string
// @Router /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.Authentication("missing token")
	}

	tasks, err := h.tasks.List(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body createTaskRequest true "title and optional description"
// @Success 201 {object} models.Task
// @Failure 400 {object} map[string]string
// @Router /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.Authentication("missing token")
	}

	var body createTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return apperrors.Validation("invalid request body")
	}

	task, err := h.tasks.Create(c.UserContext(), principal.UserID, body.Title, body.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update godoc
// @Summary Partially update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "task id"
// @Param patch body models.TaskPatch true "fields to change; absent fields are preserved"
// @Success 200 {object} models.Task
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.Authentication("missing token")
	}

	// A non-numeric id names no existing resource.
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NotFound("task")
	}

	var patch models.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperrors.Validation("invalid request body")
	}

	task, err := h.tasks.Update(c.UserContext(), principal.UserID, int64(id), patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "task id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperrors.Authentication("missing token")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NotFound("task")
	}

	if err := h.tasks.Delete(c.UserContext(), principal.UserID, int64(id)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Task deleted successfully"})
}
