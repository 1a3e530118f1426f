package api

import (
	"errors"
	"net/http"

	reqdto "github.com/steven-the-qa/coach-wire/internal/handler/dto/request"
	resdto "github.com/steven-the-qa/coach-wire/internal/handler/dto/response"
	"github.com/steven-the-qa/coach-wire/internal/handler/middleware"
	"github.com/steven-the-qa/coach-wire/internal/usecase/commands"
	"github.com/steven-the-qa/coach-wire/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClassHandler struct {
	classCommands commands.ClassCommands
	classQueries  queries.ClassQueries
}

func NewClassHandler(classCommands commands.ClassCommands, classQueries queries.ClassQueries) *ClassHandler {
	return &ClassHandler{
		classCommands: classCommands,
		classQueries:  classQueries,
	}
}

// @Summary List classes
// @Description List upcoming classes with remaining spots
// @Tags classes
// @Produce json
// @Success 200 {array} resdto.ClassListResponse
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	items, err := h.classQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ClassListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromClassListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get class
// @Description Get class details by ID
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.ClassResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	view, err := h.classQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Class not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassView(view))
}

// @Summary Create class
// @Description Publish a new class under the coach's gym
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClassRequest true "Class request"
// @Success 201 {object} resdto.ClassResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	coachID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateClassRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.classCommands.CreateClass(c.Request.Context(), coachID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGymNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No gym registered for this coach",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClassView(view))
}
