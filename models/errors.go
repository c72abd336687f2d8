package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies failures raised by the data access layer.
type ErrorKind int

const (
	KindDatabase ErrorKind = iota
	KindDuplicateKey
	KindQuery
	KindSerialization
	KindDataAccess
	KindInvalidID
)

func (k ErrorKind) String() string {
	switch k {
	case KindDatabase:
		return "database"
	case KindDuplicateKey:
		return "duplicate key"
	case KindQuery:
		return "query"
	case KindSerialization:
		return "serialization"
	case KindDataAccess:
		return "data access"
	case KindInvalidID:
		return "invalid id"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified data access failure. Err holds the driver error, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Cause() error { return e.Err }

func DatabaseError(err error, msg string) error {
	return &Error{Kind: KindDatabase, Message: msg, Err: err}
}

func DuplicateKeyError(err error) error {
	return &Error{Kind: KindDuplicateKey, Message: "duplicate key", Err: err}
}

func QueryError(err error, msg string) error {
	return &Error{Kind: KindQuery, Message: msg, Err: err}
}

func SerializationError(err error) error {
	return &Error{Kind: KindSerialization, Message: "could not encode document", Err: err}
}

func DataAccessError(err error) error {
	return &Error{Kind: KindDataAccess, Message: "could not decode stored document", Err: err}
}

// InvalidIDError reports an identifier that is not a valid ObjectID. The
// message carries the identifier as received.
func InvalidIDError(id string) error {
	return &Error{Kind: KindInvalidID, Message: fmt.Sprintf("Invalid ID: %s", id)}
}

// KindOf reports the kind of err, if it is or wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
