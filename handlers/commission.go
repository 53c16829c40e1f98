package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"santai/services/commission"
	"santai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommissionHandler exposes the therapist-facing commission endpoints.
type CommissionHandler struct {
	Svc    commission.CommissionService
	Logger *zap.Logger
}

// NewCommissionHandler creates a new CommissionHandler instance.
func NewCommissionHandler(svc commission.CommissionService, logger *zap.Logger) *CommissionHandler {
	return &CommissionHandler{Svc: svc, Logger: logger}
}

// commissionErrorStatus maps commission service errors to HTTP status codes.
func commissionErrorStatus(err error) int {
	var validationErr *commission.ValidationError
	var notFoundErr *commission.NotFoundError
	var policyErr *commission.PolicyViolationError
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

// GetPendingPaymentsHandler lists the authenticated therapist's open obligations.
func (h *CommissionHandler) GetPendingPaymentsHandler(c *gin.Context) {
	therapistID := c.GetString("therapistID")
	if therapistID == "" {
		therapistID = c.Param("id")
	}

	payments, err := h.Svc.GetTherapistPendingPayments(therapistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch pending payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// UploadPaymentProofHandler accepts a proof-of-payment file for a commission record.
func (h *CommissionHandler) UploadPaymentProofHandler(c *gin.Context) {
	commissionID := c.Param("id")
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

	record, err := h.Svc.UploadPaymentProof(c, commissionID, tempFilePath, paymentMethod)
	if err != nil {
		utils.JSONError(c, commissionErrorStatus(err), "failed to upload payment proof", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "payment proof uploaded, awaiting verification",
		"payment": record,
	})
}

// GetPaymentHistoryHandler returns the therapist's commission history, newest first.
func (h *CommissionHandler) GetPaymentHistoryHandler(c *gin.Context) {
	therapistID := c.GetString("therapistID")
	if therapistID == "" {
		therapistID = c.Param("id")
	}

	payments, err := h.Svc.GetPaymentHistory(therapistID, 50)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payment history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GetUnpaidSummaryHandler reports whether the therapist owes anything and how much.
func (h *CommissionHandler) GetUnpaidSummaryHandler(c *gin.Context) {
	therapistID := c.GetString("therapistID")
	if therapistID == "" {
		therapistID = c.Param("id")
	}

	hasUnpaid, err := h.Svc.HasUnpaidCommissions(therapistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check unpaid commissions", err.Error())
		return
	}
	amount, err := h.Svc.GetUnpaidAmount(therapistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute unpaid amount", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasUnpaid":    hasUnpaid,
		"unpaidAmount": amount,
	})
}
