package usecase

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
)

func (uc *DefaultClickUsecase) GetClickByID(clickID string) (*domain.ClickEvent, error) {
	return uc.clickRepo.GetClickByID(clickID)
}

func (uc *DefaultClickUsecase) GetClickByTrackingCode(code string) (*domain.ClickEvent, error) {
	parsed, err := domain.ParseTrackingCode(code)
	if err != nil {
		return nil, err
	}
	return uc.clickRepo.GetClickByTrackingCode(parsed)
}

func (uc *DefaultClickUsecase) GetClicks(filter domain.ClickFilter, page, limit int) ([]*domain.ClickEvent, int64, error) {
	return uc.clickRepo.GetClicks(filter, page, limit)
}
