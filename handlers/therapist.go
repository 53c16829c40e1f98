package handlers

import (
	"net/http"

	"santai/services/therapist"
	"santai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TherapistHandler exposes account registration and authentication endpoints.
type TherapistHandler struct {
	Svc    therapist.TherapistService
	Logger *zap.Logger
}

// NewTherapistHandler creates a new TherapistHandler instance.
func NewTherapistHandler(svc therapist.TherapistService, logger *zap.Logger) *TherapistHandler {
	return &TherapistHandler{Svc: svc, Logger: logger}
}

// RegisterTherapistHandler creates a new therapist account.
func (h *TherapistHandler) RegisterTherapistHandler(c *gin.Context) {
	var req therapist.RegisterTherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
		return
	}

	created, err := h.Svc.RegisterTherapist(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to register therapist", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"therapist": created})
}

type authRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthenticateTherapistHandler verifies credentials and returns a JWT.
func (h *TherapistHandler) AuthenticateTherapistHandler(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
		return
	}

	resp, err := h.Svc.AuthenticateTherapist(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTherapistProfileHandler returns the authenticated therapist's account,
// including the availability block driven by the commission lifecycle.
func (h *TherapistHandler) GetTherapistProfileHandler(c *gin.Context) {
	therapistID := c.GetString("therapistID")

	profile, err := h.Svc.GetTherapistProfile(therapistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapist": profile})
}

// RevokeTherapistTokenHandler signs the therapist out by clearing the token hash.
func (h *TherapistHandler) RevokeTherapistTokenHandler(c *gin.Context) {
	therapistID := c.GetString("therapistID")

	if err := h.Svc.RevokeAuthToken(therapistID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
