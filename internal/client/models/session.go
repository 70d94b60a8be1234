package models

// Session is the pair of bearer tokens issued by the backend. Either token
// may be empty. The client never inspects them for expiry.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Authenticated reports whether an access token is present.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
