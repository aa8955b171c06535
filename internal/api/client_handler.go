// internal/api/client_handler.go
package api

import (
	"errors"
	"net/http"
	"strconv"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- Request/Response Structs ---

type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
	Age  int    `json:"age"`
	Goal string `json:"goal"`
}

// UpdateClientRequest is a partial update: fields omitted from the body
// are left untouched on the stored client.
type UpdateClientRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
	Goal *string `json:"goal"`
}

type ClientResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Goal      string `json:"goal"`
	TrainerID uint   `json:"trainer_id"`
	IsActive  bool   `json:"is_active"`
}

// --- Handler Methods ---

// Create godoc
// @Summary Add a client to the roster
// @Description Creates a new client owned by the authenticated trainer.
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body CreateClientRequest true "Client details"
// @Success 200 {object} ClientResponse "Created client"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainer, err := getTrainerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), trainer, req.Name, req.Age, req.Goal)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create client.")
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// List godoc
// @Summary List my clients
// @Description Retrieves all active clients owned by the authenticated trainer.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ClientResponse "List of active clients"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	trainer, err := getTrainerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), trainer)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients.")
		return
	}

	c.JSON(http.StatusOK, MapClientsToResponse(clients))
}

// Get godoc
// @Summary Get one of my clients
// @Description Retrieves an active client by id if owned by the authenticated trainer.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} ClientResponse "The client"
// @Failure 400 {object} gin.H "Invalid client ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	trainer, err := getTrainerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	clientID, err := parseClientID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), trainer, clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve client.")
		}
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// Update godoc
// @Summary Update one of my clients
// @Description Applies a partial update to an active client owned by the authenticated trainer.
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param client body UpdateClientRequest true "Fields to update"
// @Success 200 {object} ClientResponse "Updated client"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	trainer, err := getTrainerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	clientID, err := parseClientID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), trainer, clientID, service.ClientUpdate{
		Name: req.Name,
		Age:  req.Age,
		Goal: req.Goal,
	})
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update client.")
		}
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// Delete godoc
// @Summary Remove one of my clients
// @Description Soft-deletes an active client owned by the authenticated trainer.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} gin.H "Confirmation message"
// @Failure 400 {object} gin.H "Invalid client ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	trainer, err := getTrainerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	clientID, err := parseClientID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID.")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), trainer, clientID); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete client.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}

// parseClientID reads the numeric id path parameter.
func parseClientID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// MapClientToResponse converts a domain Client to a ClientResponse DTO.
func MapClientToResponse(client *domain.Client) ClientResponse {
	if client == nil {
		return ClientResponse{}
	}
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Age:       client.Age,
		Goal:      client.Goal,
		TrainerID: client.TrainerID,
		IsActive:  client.IsActive,
	}
}

// MapClientsToResponse converts a slice of domain.Client to DTOs.
func MapClientsToResponse(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		responses[i] = MapClientToResponse(&cl)
	}
	return responses
}
