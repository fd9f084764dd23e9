package handlers

import (
	"net/http"
	"time"

	"github.com/AlliAyobami/myToDo/internal/auth"
	dom "github.com/AlliAyobami/myToDo/internal/domain"
	"github.com/AlliAyobami/myToDo/internal/dto"
	"github.com/AlliAyobami/myToDo/internal/problem"
	"github.com/AlliAyobami/myToDo/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Create godoc
// @Summary      Create a task in a list
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  problem.Problem
// @Failure      404   {object}  problem.Problem
// @Failure      422   {object}  problem.Problem
// @Router       /lists/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.Create(c.Request.Context(), userID, listID, req.Title, req.Description, req.DueDate.Ptr())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

// ListByList godoc
// @Summary      List a to-do list's tasks
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id        path      int  true   "List ID"
// @Param        page      query     int  false  "Page (1-based)"
// @Param        per_page  query     int  false  "Page size (default 5, max 100)"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  problem.Problem
// @Failure      404  {object}  problem.Problem
// @Router       /lists/{id}/tasks [get]
func (h *TaskHandler) ListByList(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, perPage := service.NormalizePage(parsePage(c))
	userID := auth.UserIDFromContext(c)
	items, total, err := h.svc.ListByList(c.Request.Context(), userID, listID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{
		Items:   tasksToResponses(items),
		Page:    page,
		PerPage: perPage,
		Total:   total,
	})
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id               path      int     true   "Task ID"
// @Param        include_deleted  query     bool    false  "Also return a soft-deleted task (audit lookup)"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  problem.Problem
// @Failure      404  {object}  problem.Problem
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	includeDeleted := c.Query("include_deleted") == "true"
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.GetByID(c.Request.Context(), userID, id, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update; list_id moves the task"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  problem.Problem
// @Failure      404   {object}  problem.Problem
// @Failure      422   {object}  problem.Problem
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	var (
		duePtr   *time.Time
		clearDue bool
	)
	if req.DueDate != nil {
		duePtr = req.DueDate.Ptr()
		// An explicit empty due_date clears the deadline.
		clearDue = duePtr == nil
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.Update(c.Request.Context(), userID, id, req.Title, req.Description, duePtr, clearDue, req.ListID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Delete godoc
// @Summary      Soft-delete a task
// @Tags         tasks
// @Security     CookieAuth
// @Param        id   path  int  true  "Task ID"
// @Success      204
// @Failure      400  {object}  problem.Problem
// @Failure      404  {object}  problem.Problem
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Timeline godoc
// @Summary      Due-date proximity notification for a task
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TimelineResponse
// @Failure      400  {object}  problem.Problem
// @Failure      404  {object}  problem.Problem
// @Failure      422  {object}  problem.Problem
// @Router       /tasks/{id}/timeline [get]
func (h *TaskHandler) Timeline(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	n, err := h.svc.Timeline(c.Request.Context(), userID, id)
	if err != nil {
		// Raw storage errors never reach the caller on this endpoint.
		if problem.From(err) == nil {
			err = problem.Invalid("Invalid request")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TimelineResponse{
		Data: dto.NotificationResponse{Severity: n.Severity, Message: n.Message},
	})
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		ListID:      t.ListID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   t.DeletedAt,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
