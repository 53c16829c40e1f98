package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"santai/services/deposit"
	"santai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositHandler exposes the customer-facing deposit endpoints.
type DepositHandler struct {
	Svc    deposit.DepositService
	Logger *zap.Logger
}

// NewDepositHandler creates a new DepositHandler instance.
func NewDepositHandler(svc deposit.DepositService, logger *zap.Logger) *DepositHandler {
	return &DepositHandler{Svc: svc, Logger: logger}
}

// depositErrorStatus maps deposit service errors to HTTP status codes.
func depositErrorStatus(err error) int {
	var validationErr *deposit.ValidationError
	var notFoundErr *deposit.NotFoundError
	var policyErr *deposit.PolicyViolationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &policyErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// UploadDepositProofHandler accepts a deposit payment proof for a scheduled booking.
func (h *DepositHandler) UploadDepositProofHandler(c *gin.Context) {
	depositID := c.Param("id")
	paymentMethod := c.PostForm("paymentMethod")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	record, err := h.Svc.UploadDepositProof(c, depositID, tempFilePath, paymentMethod)
	if err != nil {
		utils.JSONError(c, depositErrorStatus(err), "failed to upload deposit proof", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "deposit proof uploaded, awaiting verification",
		"deposit": record,
	})
}
