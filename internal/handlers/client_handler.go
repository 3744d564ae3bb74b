package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
	"github.com/ines300405/luxury-wheels/internal/validators"
)

type ClientHandler struct {
	clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// CreateClient registers a new client
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var input validators.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, "client", err)
		return
	}

	utils.CreatedResponse(c, "Client created successfully", client)
}

// UpdateClient replaces all editable fields of a client
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "client")
	if !ok {
		return
	}

	var input validators.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, &input)
	if err != nil {
		writeServiceError(c, "client", err)
		return
	}

	utils.SuccessResponse(c, "Client updated successfully", client)
}

// DeleteClient removes a client
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseIDParam(c, "client")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, "client", err)
		return
	}

	utils.SuccessResponse(c, "Client deleted successfully", nil)
}

// ListClients returns all clients ordered by id
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients := h.clientService.List(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Clients retrieved successfully", clients, &utils.Meta{Count: len(clients)})
}

// GetClient fetches a single client by id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseIDParam(c, "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, "client", err)
		return
	}

	utils.SuccessResponse(c, "Client retrieved successfully", client)
}

// GetClientByEmail fetches a single client by email
func (h *ClientHandler) GetClientByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.BadRequestResponse(c, "Missing email parameter")
		return
	}

	client, err := h.clientService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "client")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Client retrieved successfully", client)
}
