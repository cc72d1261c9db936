package clickdto

type RecordClickOutput struct {
	ClickID      string
	TrackingCode string
	RedirectURL  string
	SessionKey   string
	IsNewSession bool
}
