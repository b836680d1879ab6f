package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arena/internal/domain"
	"arena/internal/repository"
)

// CoachHandler handles HTTP requests for coaches.
type CoachHandler struct {
	coachRepo repository.CoachRepository
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachRepo repository.CoachRepository) *CoachHandler {
	return &CoachHandler{coachRepo: coachRepo}
}

// CreateCoachRequest is the HTTP request body for creating a coach.
type CreateCoachRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

// CoachResponse is the HTTP response for coach data.
type CoachResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`
}

func toCoachResponse(co *domain.Coach) CoachResponse {
	return CoachResponse{
		ID:        co.ID,
		Name:      co.Name,
		Phone:     co.Phone,
		Specialty: string(co.Specialty),
		Active:    co.Active,
	}
}

// Create handles POST /v1/coaches
func (h *CoachHandler) Create(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	coach := &domain.Coach{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: domain.ActivityType(req.Specialty),
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := h.coachRepo.Create(c.Request.Context(), coach); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCoachResponse(coach))
}

// GetCoach handles GET /v1/coaches/:id
func (h *CoachHandler) GetCoach(c *gin.Context) {
	coach, err := h.coachRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCoachResponse(coach))
}

// GetAll handles GET /v1/coaches
func (h *CoachHandler) GetAll(c *gin.Context) {
	coaches, err := h.coachRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CoachResponse, 0, len(coaches))
	for _, co := range coaches {
		response = append(response, toCoachResponse(co))
	}

	respondJSON(c, http.StatusOK, response)
}
