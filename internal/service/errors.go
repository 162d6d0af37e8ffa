package service

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrMissingID          = errors.New("id is required")
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrInvalidInput       = errors.New("invalid input")
)

// Error antepone la acción al mensaje original para mostrarlo en la UI.
// Unwrap conserva el *apiclient.Error con su Kind y Status.
type Error struct {
	Action string
	Err    error
}

func (e *Error) Error() string {
	return "Failed to " + e.Action + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(action string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Action: action, Err: err}
}

func pathID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingID
	}
	return url.PathEscape(id), nil
}
