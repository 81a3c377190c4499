package ir

import "errors"

var (
	// ErrParse is the category for malformed input documents.
	ErrParse = errors.New("parse error")
	// ErrUnsupported is the category for values with no defined mapping.
	ErrUnsupported = errors.New("unsupported value")
	// ErrIO is the category for destinations that cannot be read or written.
	ErrIO = errors.New("io error")
)
