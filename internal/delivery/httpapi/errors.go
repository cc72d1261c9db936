package httpapi

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// mapError переводит доменную таксономию ошибок в HTTP-статусы.
func mapError(err error) (int, gin.H) {
	var commissionErr *domain.CommissionError
	switch {
	case errors.Is(err, domain.ErrOfferNotFound):
		return http.StatusNotFound, gin.H{"error": "offer not found"}
	case errors.Is(err, domain.ErrClickNotFound):
		return http.StatusNotFound, gin.H{"error": "click not found"}
	case errors.Is(err, domain.ErrProgramNotFound):
		return http.StatusNotFound, gin.H{"error": "affiliate program not found"}
	case errors.Is(err, domain.ErrInvalidTrackingCode):
		return http.StatusUnprocessableEntity, gin.H{"error": "invalid tracking code"}
	case errors.Is(err, domain.ErrClickAlreadyConverted):
		return http.StatusConflict, gin.H{"error": "click already converted"}
	case errors.Is(err, domain.ErrAttributionWindowExpired):
		return http.StatusGone, gin.H{"error": "attribution window expired"}
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusConflict, gin.H{"error": "invalid status transition"}
	case errors.As(err, &commissionErr):
		// конверсия записана, комиссия - нет: мерчант должен видеть разницу
		return http.StatusInternalServerError, gin.H{
			"error":         "conversion recorded, commission creation failed",
			"conversion_id": commissionErr.ConversionID,
		}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal error"}
	}
}
