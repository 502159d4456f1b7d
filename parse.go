package apierr

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf8"
)

// ErrorResponse is the service's JSON error envelope in structured form:
// {"errors":[{"message":"...","code":34}, ...]}. Message and Code mirror the
// first entry of Errors for convenience; Errors holds the full list. A
// fallback response (body didn't match the envelope) has Code 0, no Errors,
// and the raw body text as Message.
type ErrorResponse struct {
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Errors  []ErrorResponse `json:"errors,omitempty"`
}

// Parse turns a raw error body into an ErrorResponse. It never fails: any
// body that isn't the expected envelope — non-JSON, wrong top-level shape,
// no usable entries — degrades to the fallback response instead.
func Parse(body []byte) ErrorResponse {
	// Decode with UseNumber so codes stay exact; non-integer codes are
	// rejected later by strconv.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var top any
	if err := dec.Decode(&top); err != nil {
		return fallback(body)
	}
	obj, ok := top.(map[string]any)
	if !ok {
		return fallback(body)
	}
	arr, ok := obj["errors"].([]any)
	if !ok {
		return fallback(body)
	}

	entries := make([]ErrorResponse, 0, len(arr))
	for _, el := range arr {
		entry, ok := el.(map[string]any)
		if !ok {
			continue
		}
		msg, ok := getString(entry, "message")
		if !ok {
			continue
		}
		code, ok := getInt(entry, "code")
		if !ok {
			continue
		}
		entries = append(entries, ErrorResponse{Message: msg, Code: code})
	}

	resp := ErrorResponse{Errors: entries}
	if !resp.valid() {
		return fallback(body)
	}
	resp.Message = entries[0].Message
	resp.Code = entries[0].Code
	return resp
}

// Contains reports whether any entry carries the given service error code,
// e.g. CodeRateLimitExceeded. Fallback responses contain nothing.
func (r ErrorResponse) Contains(code int) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// valid distinguishes a genuinely parsed envelope from the fallback.
func (r ErrorResponse) valid() bool { return len(r.Errors) > 0 }

func fallback(body []byte) ErrorResponse {
	msg := "Unknown"
	if utf8.Valid(body) {
		msg = string(body)
	}
	return ErrorResponse{Message: msg}
}

func getString(m map[string]any, key string) (string, bool) {
	if s, ok := m[key].(string); ok {
		return s, true
	}
	return "", false
}

func getInt(m map[string]any, key string) (int, bool) {
	if n, ok := m[key].(json.Number); ok {
		if i, err := strconv.Atoi(n.String()); err == nil {
			return i, true
		}
	}
	return 0, false
}
