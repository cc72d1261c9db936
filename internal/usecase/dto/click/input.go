package clickdto

type RecordClickInput struct {
	OfferID     string
	PublisherID string // optional, empty for anonymous clicks
	IP          string
	UserAgent   string
	Referrer    string
	SubID1      string
	SubID2      string
	SubID3      string
	SessionKey  string // optional opaque key from the visitor's cookie
}
