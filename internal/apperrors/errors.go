package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure.
type Kind int

const (
	KindInvalidRange Kind = iota
	KindNotFound
	KindPropertyMismatch
	KindOutOfReservationRange
	KindRoomConflict
	KindStorage
)

// Error is the single failure type crossing the service boundary. Storage
// failures wrap the driver error; validation failures carry only a message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidRange(msg string) *Error {
	return &Error{Kind: KindInvalidRange, Message: msg}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func PropertyMismatch(roomCode, requestCode string) *Error {
	return &Error{
		Kind:    KindPropertyMismatch,
		Message: fmt.Sprintf("room belongs to %q but the accommodation request belongs to %q", roomCode, requestCode),
	}
}

func OutOfReservationRange(msg string) *Error {
	return &Error{Kind: KindOutOfReservationRange, Message: msg}
}

func RoomConflict(msg string) *Error {
	return &Error{Kind: KindRoomConflict, Message: msg}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage error: " + err.Error(), Err: err}
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// HTTPStatus maps a domain error to the status code the handlers respond with.
// Unknown errors count as storage failures.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindInvalidRange, KindPropertyMismatch, KindOutOfReservationRange:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindRoomConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
