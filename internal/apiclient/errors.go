package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestFailed identifica cualquier error devuelto por el cliente.
var ErrRequestFailed = errors.New("request failed")

// Kind clasifica el origen del error.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindHTTP
	KindDecode
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error describe un fallo de una petición. Message es el texto para mostrar
// al usuario; Status solo se informa en errores HTTP.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ErrRequestFailed.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrRequestFailed }

func newNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

func newHTTPError(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return &Error{Kind: KindHTTP, Status: status, Message: message}
}

// KindOf devuelve el Kind del primer *Error de la cadena, o 0.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// StatusOf devuelve el status HTTP del error, o 0 si no hubo respuesta.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}
