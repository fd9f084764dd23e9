package handlers

import (
	"net/http"
	"time"

	"github.com/AlliAyobami/myToDo/internal/auth"
	dom "github.com/AlliAyobami/myToDo/internal/domain"
	"github.com/AlliAyobami/myToDo/internal/dto"
	"github.com/AlliAyobami/myToDo/internal/service"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	svc *service.ListService
}

func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// Create godoc
// @Summary      Create a to-do list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateListRequest  true  "List body"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  problem.Problem
// @Failure      422   {object}  problem.Problem
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID := auth.UserIDFromContext(c)
	l, err := h.svc.Create(c.Request.Context(), userID, req.Name, req.DueDate.Ptr(), dom.ListStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listToResponse(l))
}

// List godoc
// @Summary      List the caller's to-do lists
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Param        page      query     int  false  "Page (1-based)"
// @Param        per_page  query     int  false  "Page size (default 5, max 100)"
// @Success      200  {object}  dto.ListListsResponse
// @Failure      500  {object}  problem.Problem
// @Router       /lists [get]
func (h *ListHandler) List(c *gin.Context) {
	page, perPage := service.NormalizePage(parsePage(c))
	userID := auth.UserIDFromContext(c)
	items, total, err := h.svc.List(c.Request.Context(), userID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListListsResponse{
		Items:   listsToResponses(items),
		Page:    page,
		PerPage: perPage,
		Total:   total,
	})
}

// GetByID godoc
// @Summary      Get a to-do list by ID
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  dto.ListResponse
// @Failure      400  {object}  problem.Problem
// @Failure      404  {object}  problem.Problem
// @Router       /lists/{id} [get]
func (h *ListHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	l, err := h.svc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// Update godoc
// @Summary      Update a to-do list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.UpdateListRequest  true  "Partial update"
// @Success      200   {object}  dto.ListResponse
// @Failure      400   {object}  problem.Problem
// @Failure      404   {object}  problem.Problem
// @Failure      422   {object}  problem.Problem
// @Router       /lists/{id} [patch]
func (h *ListHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	var duePtr *time.Time
	if req.DueDate != nil {
		duePtr = req.DueDate.Ptr()
	}
	var statusPtr *dom.ListStatus
	if req.Status != nil {
		s := dom.ListStatus(*req.Status)
		statusPtr = &s
	}
	userID := auth.UserIDFromContext(c)
	l, err := h.svc.Update(c.Request.Context(), userID, id, req.Name, duePtr, statusPtr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// Delete godoc
// @Summary      Soft-delete a to-do list
// @Tags         lists
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      400  {object}  problem.Problem
// @Failure      404  {object}  problem.Problem
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
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

func listToResponse(l dom.ToDoList) dto.ListResponse {
	return dto.ListResponse{
		ID:        l.ID,
		Name:      l.Name,
		DueDate:   l.DueDate,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func listsToResponses(list []dom.ToDoList) []dto.ListResponse {
	out := make([]dto.ListResponse, len(list))
	for i := range list {
		out[i] = listToResponse(list[i])
	}
	return out
}
