package domain

import "strings"

const (
	TrackingCodeAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	TrackingCodeMinLength = 6
	TrackingCodeMaxLength = 12
	TrackingCodeLength    = 8
)

// TrackingCode - публичный код клика, встраиваемый в redirect URL.
// Immutable after creation, unique across all non-deleted clicks.
type TrackingCode string

func (c TrackingCode) String() string {
	return string(c)
}

// ParseTrackingCode validates length bounds and alphabet of an untrusted raw code.
func ParseTrackingCode(raw string) (TrackingCode, error) {
	if len(raw) < TrackingCodeMinLength || len(raw) > TrackingCodeMaxLength {
		return "", ErrInvalidTrackingCode
	}
	for _, r := range raw {
		if !strings.ContainsRune(TrackingCodeAlphabet, r) {
			return "", ErrInvalidTrackingCode
		}
	}
	return TrackingCode(raw), nil
}

// CodeGenerator выдаёт новые tracking-коды. Инжектируется в usecase,
// чтобы генерация была тестируемой и потокобезопасной.
type CodeGenerator interface {
	Generate() TrackingCode
	GenerateWithLength(length int) (TrackingCode, error)
}
