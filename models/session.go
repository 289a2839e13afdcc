// models/session.go
package models

// Session pairs the authenticated identity with its bearer credential. The
// two are always set and cleared together: a caller can never observe an
// identity without a token or a token without an identity.
type Session struct {
	Identity *Identity `json:"identity,omitempty"`
	Token    string    `json:"token,omitempty"`
}

// Active reports whether the session holds a usable identity and credential.
func (s Session) Active() bool {
	return s.Identity != nil && s.Token != ""
}
