package models

// Session is the auth state of a logged-in user.
type Session struct {
	Token  string
	UserID string
}

func (s Session) Valid() bool {
	return s.Token != "" && s.UserID != ""
}
