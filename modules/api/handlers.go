package api

import (
	"errors"
	"strings"

	domain "github.com/example/task-management/domain/task"
	"github.com/example/task-management/modules/task"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	// Health check endpoint
	m.app.Get("/health", m.healthHandler)

	// API v1 routes
	api := m.app.Group("/api/v1")

	// Task endpoints
	tasks := api.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.addr,
		},
	})
}

// createTask handles POST /api/v1/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return badRequest(c, "validation_error", "Title is required")
	}
	if req.OwnerID == "" {
		return badRequest(c, "validation_error", "Owner ID is required")
	}
	if _, err := uuid.Parse(req.OwnerID); err != nil {
		return badRequest(c, "validation_error", "Owner ID must be a valid UUID")
	}
	if req.AssigneeID != nil {
		if _, err := uuid.Parse(*req.AssigneeID); err != nil {
			return badRequest(c, "validation_error", "Assignee ID must be a valid UUID")
		}
	}

	resp, err := m.taskAdapter.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(resp))
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if taskID == "" {
		return badRequest(c, "validation_error", "Task ID is required")
	}

	resp, err := m.taskAdapter.GetTask(c.Context(), taskID)
	if err != nil {
		return taskError(c, err, "get_failed")
	}

	return c.JSON(toTaskResponse(resp))
}

// listTasks handles GET /api/v1/tasks.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	if page < 0 {
		return badRequest(c, "validation_error", "Page must be non-negative")
	}
	if size < 1 {
		return badRequest(c, "validation_error", "Size must be positive")
	}

	resp, err := m.taskAdapter.ListTasks(c.Context(), page, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: err.Error(),
		})
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		tasks = append(tasks, toTaskResponse(&resp.Tasks[i]))
	}

	return c.JSON(ListTasksResponse{
		Tasks: tasks,
		Total: resp.Total,
	})
}

// updateTask handles PUT /api/v1/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if taskID == "" {
		return badRequest(c, "validation_error", "Task ID is required")
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}

	if req.Title.Set && (req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "") {
		return badRequest(c, "validation_error", "Title must not be blank")
	}
	if req.Status.Set {
		if req.Status.Value == nil {
			return badRequest(c, "validation_error", "Status must not be null")
		}
		if _, err := domain.ParseStatus(*req.Status.Value); err != nil {
			return badRequest(c, "validation_error", "Unknown status: "+*req.Status.Value)
		}
	}
	if req.AssigneeID.Set && req.AssigneeID.Value != nil {
		if _, err := uuid.Parse(*req.AssigneeID.Value); err != nil {
			return badRequest(c, "validation_error", "Assignee ID must be a valid UUID")
		}
	}

	resp, err := m.taskAdapter.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      req.Status,
	})
	if err != nil {
		return taskError(c, err, "update_failed")
	}

	return c.JSON(toTaskResponse(resp))
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	taskID := c.Params("id")
	if taskID == "" {
		return badRequest(c, "validation_error", "Task ID is required")
	}

	resp, err := m.taskAdapter.DeleteTask(c.Context(), taskID)
	if err != nil {
		return taskError(c, err, "delete_failed")
	}

	return c.JSON(DeleteTaskResponse{
		ID:      resp.ID,
		Deleted: resp.Deleted,
	})
}

// taskError maps domain errors onto HTTP statuses: missing records are 404,
// lifecycle violations are 400, anything else is a 500.
func taskError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	case errors.Is(err, domain.ErrNotUpdatable):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "illegal_operation",
			Message: "Task not valid for update",
		})
	case errors.Is(err, domain.ErrNotDeletable):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "illegal_operation",
			Message: "Task not valid for deletion",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   fallback,
		Message: err.Error(),
	})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// toTaskResponse converts a task module response to the HTTP projection.
func toTaskResponse(t *task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		OwnerID:     t.OwnerID,
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt,
		ModifiedAt:  t.ModifiedAt,
	}
}
