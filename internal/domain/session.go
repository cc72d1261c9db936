package domain

import "time"

// ClickSession группирует клики одного посетителя в рамках окна атрибуции.
// Active -> Expired one way: a click after expiry starts a brand-new session,
// the old one is never revived.
type ClickSession struct {
	ID             string
	Key            string // opaque key stored client-side (cookie)
	PublisherID    string
	IP             string
	StartedAt      time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time
	ClickCount     int64
}

func (s *ClickSession) IsValid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

type SessionRepository interface {
	CreateSession(session *ClickSession) error
	GetSessionByKey(key string) (*ClickSession, error)
	// Touch extends the window and increments the click counter.
	Touch(sessionID string, lastActivity, expiresAt time.Time) error
	FindExpiredSessions(since time.Time) ([]*ClickSession, error)
}

// SessionCache - горячий путь поиска сессии. Best effort: промах или ошибка
// кэша означает поход в Postgres, не отказ.
type SessionCache interface {
	Get(key string) (*ClickSession, bool)
	Set(session *ClickSession)
	Invalidate(key string)
}
