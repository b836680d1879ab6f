package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arena/internal/domain"
	"arena/internal/repository"
)

// PlayerHandler handles HTTP requests for players.
type PlayerHandler struct {
	playerRepo repository.PlayerRepository
	clientRepo repository.ClientRepository
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerRepo repository.PlayerRepository, clientRepo repository.ClientRepository) *PlayerHandler {
	return &PlayerHandler{playerRepo: playerRepo, clientRepo: clientRepo}
}

// CreatePlayerRequest is the HTTP request body for registering a player.
type CreatePlayerRequest struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

// PlayerResponse is the HTTP response for player data.
type PlayerResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

func toPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{ID: p.ID, ClientID: p.ClientID, Name: p.Name, BirthDate: p.BirthDate}
}

// Create handles POST /v1/players
func (h *PlayerHandler) Create(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.ClientID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "client_id and name are required"})
		return
	}

	// Players must belong to an existing client.
	if _, err := h.clientRepo.GetByID(c.Request.Context(), req.ClientID); err != nil {
		respondError(c, err)
		return
	}

	player := &domain.Player{
		ID:        uuid.New().String(),
		ClientID:  req.ClientID,
		Name:      req.Name,
		BirthDate: req.BirthDate,
		CreatedAt: time.Now(),
	}

	if err := h.playerRepo.Create(c.Request.Context(), player); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPlayerResponse(player))
}

// GetPlayer handles GET /v1/players/:id
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.playerRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPlayerResponse(player))
}

// GetClientPlayers handles GET /v1/clients/:id/players
func (h *PlayerHandler) GetClientPlayers(c *gin.Context) {
	players, err := h.playerRepo.GetByClientID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PlayerResponse, 0, len(players))
	for _, p := range players {
		response = append(response, toPlayerResponse(p))
	}

	respondJSON(c, http.StatusOK, response)
}
