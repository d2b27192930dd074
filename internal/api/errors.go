package api

import "errors"

var (
	// Decoding errors
	ErrMalformedJSON = errors.New("malformed JSON")
	ErrDecode        = errors.New("failed to decode object")
)

// Decode error reasons
const (
	// ReasonNotObject indicates the decoded value is not a JSON object
	ReasonNotObject = "NOT_OBJECT"

	// ReasonMissingField indicates a required field is absent
	ReasonMissingField = "MISSING_FIELD"

	// ReasonWrongType indicates a field holds a value of the wrong JSON type
	ReasonWrongType = "WRONG_TYPE"
)

// DecodeError provides structured information about a failed object decode
type DecodeError struct {
	Type   string `json:"type"`            // e.g., "GreetArgs"
	Field  string `json:"field,omitempty"` // JSON field name, empty for whole-object failures
	Reason string `json:"reason"`          // e.g., "MISSING_FIELD"
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return e.Type + "." + e.Field + ": " + e.Reason
	}
	return e.Type + ": " + e.Reason
}

// Unwrap lets errors.Is match ErrDecode
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}
