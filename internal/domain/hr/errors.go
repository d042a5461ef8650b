package hr

import "errors"

var ErrUnknownKind = errors.New("unknown hr case type")
