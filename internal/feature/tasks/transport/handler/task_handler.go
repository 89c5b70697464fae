// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
)

// TaskUsecase defines the task operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	// Create validates the title and persists a new open task.
	Create(ctx context.Context, title string) (*entity.Task, error)
	// ListPage returns the requested 1-based page, clamped to the valid range.
	ListPage(ctx context.Context, page int) (*usecase.Page, error)
	// Get retrieves a single task by ID.
	Get(ctx context.Context, id uint) (*entity.Task, error)
	// Update applies a partial update to the task with the given ID.
	Update(ctx context.Context, id uint, fields usecase.UpdateFields) (*entity.Task, error)
	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id uint) error
}

// TaskHandler serves the task list, create, update and delete flows plus the
// JSON API listing and creation endpoints.
type TaskHandler struct {
	uc TaskUsecase
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(uc TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Index renders the landing page.
// GET /
func (h *TaskHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"user": authhandler.CurrentUser(c),
	})
}

// List renders the paginated task list with the inline creation form.
// The page query parameter is 1-based; anything unparsable falls back to
// page 1 and out-of-range values clamp inside the usecase.
// GET /tasks/?page=N
func (h *TaskHandler) List(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageNum, err := strconv.Atoi(pageStr)
	if err != nil {
		pageNum = 1
	}

	page, err := h.uc.ListPage(c.Request.Context(), pageNum)
	if err != nil {
		slog.Error("task list failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "task_list.html", h.listContext(c, page, "", ""))
}

// Create handles the creation form submission and redirects back to the list.
// Validation failures re-render the list page with the field error inline.
// POST /tasks/
func (h *TaskHandler) Create(c *gin.Context) {
	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderListWithError(c, c.PostForm("title"), "Title is required and must be at most 255 characters.")
		return
	}

	task, err := h.uc.Create(c.Request.Context(), form.Title)
	if err != nil {
		h.renderListWithError(c, form.Title, err.Error())
		return
	}

	slog.Info("task created", "task_id", task.ID)
	c.Redirect(http.StatusFound, "/tasks/")
}

// ShowUpdate renders the pre-populated edit form for an existing task.
// GET /tasks/:id/update
func (h *TaskHandler) ShowUpdate(c *gin.Context) {
	task, ok := h.taskFromParam(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "task_form.html", gin.H{"task": task})
}

// Update applies the edit form to an existing task and redirects to the list.
// POST /tasks/:id/update
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := h.idFromParam(c)
	if !ok {
		return
	}

	var form dto.TaskUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		task, found := h.taskFromParam(c)
		if !found {
			return
		}
		c.HTML(http.StatusBadRequest, "task_form.html", gin.H{
			"task":       task,
			"form_error": "Title is required and must be at most 255 characters.",
		})
		return
	}

	status := form.Done()
	_, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateFields{
		Title:  &form.Title,
		Status: &status,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		slog.Error("task update failed", "error", err, "task_id", id)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("task updated", "task_id", id)
	c.Redirect(http.StatusFound, "/tasks/")
}

// ShowDelete renders the deletion confirmation page.
// GET /tasks/:id/delete
func (h *TaskHandler) ShowDelete(c *gin.Context) {
	task, ok := h.taskFromParam(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "task_confirm_delete.html", gin.H{"task": task})
}

// Delete removes the task and redirects to the list.
// POST /tasks/:id/delete
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := h.idFromParam(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		slog.Error("task delete failed", "error", err, "task_id", id)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("task deleted", "task_id", id)
	c.Redirect(http.StatusFound, "/tasks/")
}

// APIList returns one page of tasks as JSON.
// GET /api/tasks?page=N
func (h *TaskHandler) APIList(c *gin.Context) {
	pageNum, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		pageNum = 1
	}

	page, err := h.uc.ListPage(c.Request.Context(), pageNum)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := dto.TaskPageResponse{
		Tasks:      make([]dto.TaskItem, 0, len(page.Tasks)),
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalCount: page.TotalCount,
	}
	for _, t := range page.Tasks {
		out.Tasks = append(out.Tasks, dto.TaskItem{ID: t.ID, Title: t.Title, Status: t.Status})
	}
	c.JSON(http.StatusOK, out)
}

// APICreate creates a task from a JSON body.
// POST /api/tasks
func (h *TaskHandler) APICreate(c *gin.Context) {
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	task, err := h.uc.Create(c.Request.Context(), req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.TaskItem{ID: task.ID, Title: task.Title, Status: task.Status})
}

// idFromParam parses the :id path parameter, answering 404 on garbage.
func (h *TaskHandler) idFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "task not found")
		return 0, false
	}
	return uint(id), true
}

// taskFromParam loads the task named by the :id path parameter, answering 404
// when it does not resolve.
func (h *TaskHandler) taskFromParam(c *gin.Context) (*entity.Task, bool) {
	id, ok := h.idFromParam(c)
	if !ok {
		return nil, false
	}
	task, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
		} else {
			slog.Error("task lookup failed", "error", err, "task_id", id)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return nil, false
	}
	return task, true
}

// renderListWithError re-renders the list page with a creation-form error.
func (h *TaskHandler) renderListWithError(c *gin.Context, title, msg string) {
	page, err := h.uc.ListPage(c.Request.Context(), 1)
	if err != nil {
		slog.Error("task list failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusBadRequest, "task_list.html", h.listContext(c, page, title, msg))
}

// listContext assembles the template data for the list page.
func (h *TaskHandler) listContext(c *gin.Context, page *usecase.Page, formTitle, formError string) gin.H {
	return gin.H{
		"tasks":       page.Tasks,
		"total_tasks": page.TotalCount,
		"page":        page,
		"user":        authhandler.CurrentUser(c),
		"form_title":  formTitle,
		"form_error":  formError,
	}
}
