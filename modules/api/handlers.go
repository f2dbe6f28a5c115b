package api

import (
	"errors"

	"github.com/example/task-manager-demo/modules/task"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	// Health check endpoint
	m.app.Get("/health", m.healthHandler)

	// Task endpoints
	tasks := m.app.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Patch("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)

	// Activity log endpoint
	m.app.Get("/activity", m.recentActivity)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// createTask handles POST /tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	resp, err := m.taskAdapter.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return m.taskError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(MutationResponse{
		Message: "Task created successfully",
		Data:    toTaskResponse(resp),
	})
}

// getTask handles GET /tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	resp, err := m.taskAdapter.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		return m.taskError(c, err)
	}

	return c.JSON(toTaskResponse(resp))
}

// listTasks handles GET /tasks with optional status, searchTerm, sortBy,
// and sortOrder query parameters. The response is a bare JSON array.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	query := task.ListQuery{
		Status:     c.Query("status"),
		SearchTerm: c.Query("searchTerm"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}

	resp, err := m.taskAdapter.ListTasks(c.Context(), query)
	if err != nil {
		return m.taskError(c, err)
	}

	result := make([]TaskResponse, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		result = append(result, toTaskResponse(&t))
	}

	return c.JSON(result)
}

// updateTask handles PATCH /tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	resp, err := m.taskAdapter.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return m.taskError(c, err)
	}

	return c.JSON(MutationResponse{
		Message: "Task updated successfully",
		Data:    toTaskResponse(resp),
	})
}

// deleteTask handles DELETE /tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	if err := m.taskAdapter.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return m.taskError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Task deleted"})
}

// recentActivity handles GET /activity.
func (m *APIModule) recentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	resp, err := m.activityAdapter.RecentActivity(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Error fetching activity",
		})
	}

	return c.JSON(resp)
}

// taskError translates typed service errors into HTTP status codes:
// validation failures map to 400, missing tasks to 404, and anything
// unexpected to 500.
func (m *APIModule) taskError(c *fiber.Ctx, err error) error {
	var verr *task.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: verr.Error(),
		})
	}
	if errors.Is(err, task.ErrTaskNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: err.Error(),
	})
}

// toTaskResponse converts a task module response to the HTTP shape.
func toTaskResponse(t *task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
