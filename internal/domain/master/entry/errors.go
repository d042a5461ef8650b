package entry

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrCodeExists  = errors.New("code already exists")
	ErrInUse       = errors.New("is still in use")
	ErrUnknownKind = errors.New("unknown master data kind")
)

// KindError ties a sentinel to the resource it happened on, e.g. "department not found".
type KindError struct {
	Kind Kind
	Err  error
}

func NewKindError(kind Kind, err error) *KindError {
	return &KindError{Kind: kind, Err: err}
}

func (e *KindError) Error() string {
	return e.Kind.Label() + " " + e.Err.Error()
}

func (e *KindError) Unwrap() error {
	return e.Err
}
