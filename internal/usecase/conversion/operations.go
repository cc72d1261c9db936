package usecase

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
)

func (uc *DefaultConversionUsecase) GetConversionByID(conversionID string) (*domain.Conversion, error) {
	return uc.conversionRepo.GetConversionByID(conversionID)
}

func (uc *DefaultConversionUsecase) ValidateConversion(conversionID string) error {
	return uc.transition(conversionID, domain.ConversionValidated, "")
}

func (uc *DefaultConversionUsecase) RejectConversion(conversionID, reason string) error {
	return uc.transition(conversionID, domain.ConversionRejected, reason)
}

func (uc *DefaultConversionUsecase) transition(conversionID string, next domain.ConversionStatus, reason string) error {
	conversion, err := uc.conversionRepo.GetConversionByID(conversionID)
	if err != nil {
		return err
	}
	if !conversion.CanTransitionTo(next) {
		return domain.ErrInvalidStatusTransition
	}
	return uc.conversionRepo.UpdateConversionStatus(conversionID, next, reason)
}
