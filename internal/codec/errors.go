package codec

import "fmt"

// DecodeError indicates a sync string that is not validly encoded: bad
// base64 or bytes that do not decode to JSON.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid sync code: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid sync code: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ParseError indicates a backup file whose contents are not valid JSON.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid backup file: could not parse JSON: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError indicates decoded data that lacks the required shape
// (a jobs array at minimum).
type SchemaError struct {
	Details []string
}

func (e *SchemaError) Error() string {
	if len(e.Details) == 0 {
		return "data is not a valid backup: missing jobs array"
	}
	return fmt.Sprintf("data is not a valid backup: %v", e.Details)
}
