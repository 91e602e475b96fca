package studio

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studioreserve/internal/domain"
	"studioreserve/internal/middleware"
	"studioreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	studios := rg.Group("/studios")
	{
		studios.GET("", h.GetStudios)
		studios.POST("", middleware.OwnerOnly(), h.CreateStudio)
		studios.GET("/:id", h.GetStudio)
		studios.PUT("/:id", h.UpdateStudio)
		studios.DELETE("/:id", h.DeleteStudio)
	}

	employees := rg.Group("/studio-employees")
	{
		employees.GET("", h.ListEmployees)
		employees.POST("", h.AssignEmployee)
		employees.DELETE("/:id", h.RemoveEmployee)
	}
}

/* ---------- STUDIO HANDLERS ---------- */

// GetStudios handles GET /api/v1/studios
func (h *Handler) GetStudios(c *gin.Context) {
	var q ListStudiosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	studios, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"studios": studios, "count": len(studios)})
}

func (h *Handler) GetStudio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	studio, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"studio": studio})
}

func (h *Handler) CreateStudio(c *gin.Context) {
	var req CreateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	studio, err := h.service.Create(c.Request.Context(), middleware.Caller(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"studio": studio})
}

func (h *Handler) UpdateStudio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	studio, err := h.service.Update(c.Request.Context(), middleware.Caller(c), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"studio": studio})
}

func (h *Handler) DeleteStudio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Caller(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- EMPLOYEE HANDLERS ---------- */

// ListEmployees handles GET /api/v1/studio-employees?studio_id=
func (h *Handler) ListEmployees(c *gin.Context) {
	var studioID int64
	if raw := c.Query("studio_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.FromError(c, domain.NewValidationError("studio_id", "invalid studio id"))
			return
		}
		studioID = v
	}

	rows, err := h.service.ListEmployees(c.Request.Context(), middleware.Caller(c), studioID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employees": rows, "count": len(rows)})
}

func (h *Handler) AssignEmployee(c *gin.Context) {
	var req AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	se, err := h.service.AssignEmployee(c.Request.Context(), middleware.Caller(c), req.StudioID, req.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"assignment": se})
}

func (h *Handler) RemoveEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveEmployee(c.Request.Context(), middleware.Caller(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.FromError(c, domain.NewValidationError("id", "invalid id"))
		return 0, false
	}
	return id, true
}
