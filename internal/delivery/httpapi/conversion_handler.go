package httpapi

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	conversionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/conversion"
	conversiondto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/conversion"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ConversionHandler struct {
	conversionUsecase conversionuc.ConversionUsecase
}

func NewConversionHandler(conversionUsecase conversionuc.ConversionUsecase) *ConversionHandler {
	return &ConversionHandler{conversionUsecase: conversionUsecase}
}

// Postback обрабатывает POST /postback - уведомление мерчанта о продаже.
// Повторный постбэк с тем же order id отвечает 409 с id обработанной конверсии.
func (h *ConversionHandler) Postback(c *gin.Context) {
	var req struct {
		TrackingCode    string `json:"tracking_code" binding:"required"`
		ExternalOrderID string `json:"external_order_id" binding:"required"`
		SaleAmount      string `json:"sale_amount" binding:"required"`
		Currency        string `json:"currency" binding:"required"`
		ProductInfo     string `json:"product_info"`
		CustomerHash    string `json:"customer_hash"`
		RawPayload      string `json:"raw_payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saleAmount, err := decimal.NewFromString(req.SaleAmount)
	if err != nil || saleAmount.IsNegative() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid sale_amount"})
		return
	}

	output, err := h.conversionUsecase.RecordConversion(c.Request.Context(), &conversiondto.RecordConversionInput{
		TrackingCode:    req.TrackingCode,
		ExternalOrderID: req.ExternalOrderID,
		SaleAmount:      saleAmount,
		Currency:        req.Currency,
		ProductInfo:     req.ProductInfo,
		CustomerHash:    req.CustomerHash,
		RawPayload:      req.RawPayload,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateConversion) {
			body := gin.H{"error": "already processed"}
			if output != nil {
				body["conversion_id"] = output.ConversionID
			}
			c.JSON(http.StatusConflict, body)
			return
		}
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	resp := gin.H{"conversion_id": output.ConversionID}
	if output.CommissionID != "" {
		resp["commission_id"] = output.CommissionID
	}
	c.JSON(http.StatusCreated, resp)
}

// GetConversion обрабатывает GET /api/conversions/:id
func (h *ConversionHandler) GetConversion(c *gin.Context) {
	conversion, err := h.conversionUsecase.GetConversionByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversion not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"conversion_id":     conversion.ID,
		"click_id":          conversion.ClickID,
		"external_order_id": conversion.ExternalOrderID,
		"sale_amount":       conversion.SaleAmount.String(),
		"currency":          conversion.Currency,
		"status":            string(conversion.Status),
		"rejection_reason":  conversion.RejectionReason,
		"created_at":        conversion.CreatedAt,
	})
}
