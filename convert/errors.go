package convert

import "fmt"

// DecodeError reports a failure converting a document node to a host value.
type DecodeError struct {
	FieldPath string // field path (e.g. "server.ports[2]")
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("decode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failure converting a host value to a document node.
type EncodeError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *EncodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("encode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
