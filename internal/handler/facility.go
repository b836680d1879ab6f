package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arena/internal/domain"
	"arena/internal/repository"
)

// FacilityHandler handles HTTP requests for facilities.
type FacilityHandler struct {
	facilityRepo repository.FacilityRepository
}

// NewFacilityHandler creates a new FacilityHandler.
func NewFacilityHandler(facilityRepo repository.FacilityRepository) *FacilityHandler {
	return &FacilityHandler{facilityRepo: facilityRepo}
}

// CreateFacilityRequest is the HTTP request body for registering a facility.
type CreateFacilityRequest struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
}

// FacilityResponse is the HTTP response for facility data.
type FacilityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
}

func toFacilityResponse(f *domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:       f.ID,
		Name:     f.Name,
		Kind:     string(f.Kind),
		Capacity: f.Capacity,
		Active:   f.Active,
	}
}

// Create handles POST /v1/facilities
func (h *FacilityHandler) Create(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Kind == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name and kind are required"})
		return
	}

	facility := &domain.Facility{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Kind:      domain.FacilityKind(req.Kind),
		Capacity:  req.Capacity,
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := h.facilityRepo.Create(c.Request.Context(), facility); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFacilityResponse(facility))
}

// GetFacility handles GET /v1/facilities/:id
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	facility, err := h.facilityRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toFacilityResponse(facility))
}

// GetAll handles GET /v1/facilities
func (h *FacilityHandler) GetAll(c *gin.Context) {
	facilities, err := h.facilityRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		response = append(response, toFacilityResponse(f))
	}

	respondJSON(c, http.StatusOK, response)
}
