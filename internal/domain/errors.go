package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOfferNotFound            = errors.New("offer not found or inactive")
	ErrProgramNotFound          = errors.New("affiliate program not found")
	ErrClickNotFound            = errors.New("click not found by tracking code")
	ErrClickAlreadyConverted    = errors.New("click is already linked to a conversion")
	ErrSessionNotFound          = errors.New("click session not found")
	ErrDuplicateConversion      = errors.New("conversion with this external order id already exists")
	ErrAttributionWindowExpired = errors.New("attribution window expired")
	ErrInvalidTrackingCode      = errors.New("invalid tracking code format")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
)

// CommissionError - конверсия сохранена, но начисление комиссии не удалось.
// Caller can tell "conversion recorded but commission failed" apart from
// "conversion rejected outright".
type CommissionError struct {
	ConversionID string
	Err          error
}

func (e *CommissionError) Error() string {
	return fmt.Sprintf("commission creation failed for conversion %s: %v", e.ConversionID, e.Err)
}

func (e *CommissionError) Unwrap() error {
	return e.Err
}
