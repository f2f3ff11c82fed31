// Package httpapi exposes the record service over HTTP with fasthttp
package httpapi

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data any, message string) Envelope {
	return Envelope{
		Status:  "success",
		Data:    data,
		Message: message,
	}
}

// NewError returns an error envelope. message is the user-facing wording.
func NewError(code string, err any, message string) Envelope {
	return Envelope{
		Status:  "error",
		Code:    code,
		Error:   err,
		Message: message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
