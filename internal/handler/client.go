package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arena/internal/domain"
	"arena/internal/repository"
)

// ClientHandler handles HTTP requests for clients.
type ClientHandler struct {
	clientRepo repository.ClientRepository
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientRepo repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

// RegisterClientRequest is the HTTP request body for client registration.
type RegisterClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ClientResponse is the HTTP response for client data.
type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

func toClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
}

// Register handles POST /v1/clients/register
func (h *ClientHandler) Register(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name and phone are required"})
		return
	}

	// Check if client already exists
	existing, err := h.clientRepo.GetByPhone(c.Request.Context(), req.Phone)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		respondError(c, err)
		return
	}

	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"message": "Client already registered",
			"client":  toClientResponse(existing),
		})
		return
	}

	client := &domain.Client{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	if err := h.clientRepo.Create(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(client))
}

// GetClient handles GET /v1/clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toClientResponse(client))
}

// GetAll handles GET /v1/clients
func (h *ClientHandler) GetAll(c *gin.Context) {
	clients, err := h.clientRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ClientResponse, 0, len(clients))
	for _, cl := range clients {
		response = append(response, toClientResponse(cl))
	}

	respondJSON(c, http.StatusOK, response)
}
