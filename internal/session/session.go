// Package session owns the locally persisted user identity. There is no
// credential verification: the password is checked for shape on the client
// and never stored or transmitted.
package session

import (
	"errors"
	"regexp"
	"strings"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session identifies the logged-in user.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// New builds a session for the given identity. A blank name defaults to the
// local part of the email.
func New(name, email string) Session {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = email
		}
	}
	return Session{Name: name, Email: email}
}

// valid reports whether a rehydrated session is usable.
func (s Session) valid() bool {
	return emailPattern.MatchString(s.Email)
}

// ValidateEmail checks the email shape used by the login form.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidatePassword checks the password shape used by the login form. The
// password is used for this check only.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
