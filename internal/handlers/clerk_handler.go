package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renan-throsa/Golden-leaf/internal/services"
)

type ClerkHandler struct {
	service services.ClerkService
}

type registerClerkRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type updateAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func NewClerkHandler(service services.ClerkService) *ClerkHandler {
	return &ClerkHandler{service: service}
}

// @Summary      Register a clerk
// @Tags         Clerk
// @Accept       json
// @Produce      json
// @Param        clerk  body      registerClerkRequest  true  "Registration data"
// @Success      201    {object}  models.Clerk
// @Failure      400    {object}  map[string]string
// @Router       /register [post]
func (h *ClerkHandler) Register(c *gin.Context) {
	var req registerClerkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	clerk, err := h.service.Register(req.Name, req.PhoneNumber, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clerk)
}

// Account returns the logged-in clerk.
func (h *ClerkHandler) Account(c *gin.Context) {
	clerkID, ok := getClerkID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	clerk, err := h.service.Get(clerkID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clerk)
}

// UpdateAccount changes the logged-in clerk's email.
func (h *ClerkHandler) UpdateAccount(c *gin.Context) {
	clerkID, ok := getClerkID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	clerk, err := h.service.UpdateEmail(clerkID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your email address has been updated.", "clerk": clerk})
}
