package httpapi

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	commissionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/commission"
	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	commissionUsecase commissionuc.CommissionUsecase
}

func NewCommissionHandler(commissionUsecase commissionuc.CommissionUsecase) *CommissionHandler {
	return &CommissionHandler{commissionUsecase: commissionUsecase}
}

// Approve обрабатывает POST /api/commissions/:id/approve
func (h *CommissionHandler) Approve(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&req)
	if err := h.commissionUsecase.ApproveCommission(c.Param("id"), req.Note); err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.CommissionApproved)})
}

// Reject обрабатывает POST /api/commissions/:id/reject
func (h *CommissionHandler) Reject(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	if err := h.commissionUsecase.RejectCommission(c.Param("id"), req.Reason); err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.CommissionRejected)})
}

// MarkPaid обрабатывает POST /api/commissions/:id/paid
func (h *CommissionHandler) MarkPaid(c *gin.Context) {
	if err := h.commissionUsecase.MarkCommissionPaid(c.Param("id")); err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.CommissionPaid)})
}

// GetCommission обрабатывает GET /api/commissions/:id
func (h *CommissionHandler) GetCommission(c *gin.Context) {
	commission, err := h.commissionUsecase.GetCommissionByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "commission not found"})
		return
	}
	c.JSON(http.StatusOK, toCommissionResponse(commission))
}

// ListCommissions обрабатывает GET /api/commissions?publisher_id=&status=&page=&limit=
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	var filter domain.CommissionFilter
	if publisherID := c.Query("publisher_id"); publisherID != "" {
		filter.PublisherID = &publisherID
	}
	if statusParam := c.Query("status"); statusParam != "" {
		status := domain.CommissionStatus(statusParam)
		filter.Status = &status
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	commissions, total, err := h.commissionUsecase.GetCommissions(filter, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	items := make([]gin.H, len(commissions))
	for i, commission := range commissions {
		items[i] = toCommissionResponse(commission)
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

func toCommissionResponse(commission *domain.Commission) gin.H {
	return gin.H{
		"commission_id":   commission.ID,
		"publisher_id":    commission.PublisherID,
		"click_id":        commission.ClickID,
		"conversion_id":   commission.ConversionID,
		"sale_amount":     commission.SaleAmount.String(),
		"amount":          commission.Amount.String(),
		"rate_applied":    commission.RateApplied.String(),
		"tier_name":       commission.TierName,
		"is_fixed_amount": commission.IsFixedAmount,
		"currency":        commission.Currency,
		"status":          string(commission.Status),
		"note":            commission.Note,
		"status_changed":  commission.StatusChanged,
		"created_at":      commission.CreatedAt,
	}
}
