package token

import "errors"

var (
	ErrString   = errors.New("bad string")
	ErrEscape   = errors.New("bad escape")
	ErrNumber   = errors.New("bad number")
	ErrDatetime = errors.New("bad datetime")
)
