package handlers

import (
	"net/http"

	therapistRepo "santai/database/repository/therapist"
	"santai/services/commission"
	"santai/services/deposit"
	"santai/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the verification dashboard endpoints.
type AdminHandler struct {
	Commissions commission.CommissionService
	Deposits    deposit.DepositService
	Therapists  therapistRepo.TherapistRepository
	Logger      *zap.Logger
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(
	commissions commission.CommissionService,
	deposits deposit.DepositService,
	therapists therapistRepo.TherapistRepository,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		Commissions: commissions,
		Deposits:    deposits,
		Therapists:  therapists,
		Logger:      logger,
	}
}

// GetPaymentsAwaitingVerificationHandler lists commission records queued for review.
func (h *AdminHandler) GetPaymentsAwaitingVerificationHandler(c *gin.Context) {
	payments, err := h.Commissions.GetPaymentsAwaitingVerification()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payments awaiting verification", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

type verifyPaymentRequest struct {
	AdminID         string `json:"adminId" binding:"required"`
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejectionReason"`
}

// VerifyPaymentHandler approves or rejects a commission payment proof.
func (h *AdminHandler) VerifyPaymentHandler(c *gin.Context) {
	commissionID := c.Param("id")

	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	record, err := h.Commissions.VerifyPayment(commissionID, req.AdminID, req.Approved, req.RejectionReason)
	if err != nil {
		utils.JSONError(c, commissionErrorStatus(err), "failed to verify payment", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": record})
}

// RunOverdueSweepHandler triggers the overdue sweep on demand. The same sweep
// also runs on a fixed cadence in the background worker.
func (h *AdminHandler) RunOverdueSweepHandler(c *gin.Context) {
	if err := h.Commissions.CheckOverduePayments(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "overdue sweep failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "overdue sweep completed"})
}

// GetDepositsAwaitingVerificationHandler lists paid deposits queued for review.
func (h *AdminHandler) GetDepositsAwaitingVerificationHandler(c *gin.Context) {
	deposits, err := h.Deposits.GetDepositsAwaitingVerification()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch deposits awaiting verification", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": deposits})
}

type verifyDepositRequest struct {
	AdminID string `json:"adminId" binding:"required"`
}

// VerifyDepositHandler verifies a deposit payment and confirms its booking.
func (h *AdminHandler) VerifyDepositHandler(c *gin.Context) {
	depositID := c.Param("id")

	var req verifyDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	record, err := h.Deposits.VerifyDeposit(depositID, req.AdminID)
	if err != nil {
		utils.JSONError(c, depositErrorStatus(err), "failed to verify deposit", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deposit": record})
}

// GetAllTherapistsHandler lists all therapist accounts with their availability flags.
func (h *AdminHandler) GetAllTherapistsHandler(c *gin.Context) {
	therapists, err := h.Therapists.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch therapists", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapists": therapists})
}
