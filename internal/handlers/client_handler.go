package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renan-throsa/Golden-leaf/internal/models"
	"github.com/renan-throsa/Golden-leaf/internal/pdf"
	"github.com/renan-throsa/Golden-leaf/internal/services"
)

type ClientHandler struct {
	service services.ClientService
	cards   pdf.Generator
}

func NewClientHandler(service services.ClientService, cards pdf.Generator) *ClientHandler {
	return &ClientHandler{service: service, cards: cards}
}

func clientLocation(id int) string {
	return fmt.Sprintf("/client/%d", id)
}

// @Summary      List clients
// @Tags         Client
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /client [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// @Summary      Search clients by name
// @Tags         Client
// @Produce      json
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {object}  map[string]interface{}
// @Router       /client/search [get]
func (h *ClientHandler) Search(c *gin.Context) {
	clients, err := h.service.Search(c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// @Summary      Get a client
// @Tags         Client
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  models.Client
// @Failure      404  {object}  map[string]string
// @Router       /client/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      Get a client's address
// @Tags         Client
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  models.Address
// @Failure      404  {object}  map[string]string
// @Router       /client/{id}/address [get]
func (h *ClientHandler) GetAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client.Address)
}

// @Summary      Create a client with its address
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        client  body      models.ClientInput  true  "Client fields"
// @Success      201     {object}  models.Client
// @Failure      400     {object}  map[string]string
// @Router       /client [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var in models.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := h.service.Create(&in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", clientLocation(client.ID))
	c.JSON(http.StatusCreated, client)
}

// @Summary      Update a client's own fields
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Client ID"
// @Param        client  body      models.ClientUpdate  true  "Mutable fields"
// @Success      200     {object}  models.Client
// @Failure      404     {object}  map[string]string
// @Router       /client/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in models.ClientUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := h.service.Update(id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", clientLocation(client.ID))
	c.JSON(http.StatusOK, client)
}

// @Summary      Update a client's address
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Client ID"
// @Param        address  body      models.AddressUpdate  true  "Address fields"
// @Success      200      {object}  models.Client
// @Failure      404      {object}  map[string]string
// @Router       /client/{id}/address [put]
func (h *ClientHandler) UpdateAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in models.AddressUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := h.service.UpdateAddress(id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", clientLocation(client.ID))
	c.JSON(http.StatusOK, client)
}

// Card renders a printable PDF record of the client.
func (h *ClientHandler) Card(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := h.cards.GenerateClientCard(pdf.CardData{
		ClientID:       client.ID,
		Name:           client.Name,
		Identification: client.Identification,
		PhoneNumber:    client.PhoneNumber,
		Street:         client.Address.Street,
		Detail:         client.Address.Detail,
		ZipCode:        client.Address.ZipCode,
		Notifiable:     client.Notifiable,
		Status:         client.Status,
		GeneratedAt:    time.Now(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate card"})
		return
	}
	c.FileAttachment(path, fmt.Sprintf("client_%d.pdf", client.ID))
}
