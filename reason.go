package apierr

import (
	"fmt"
	"strings"
)

// RequestFailureReason says why a request could not be built.
type RequestFailureReason interface {
	error
	requestFailure()
}

// ResponseFailureReason says why a received response was unusable.
type ResponseFailureReason interface {
	error
	responseFailure()
}

// SerializationFailureReason says why a response body could not be decoded.
type SerializationFailureReason interface {
	error
	serializationFailure()
}

// UploadFailureReason says why media-upload processing failed.
type UploadFailureReason interface {
	error
	uploadFailure()
}

// Param is one entry of an ordered request-parameter mapping.
type Param struct {
	Key   string
	Value any
}

// Params keeps parameters in the order the caller supplied them, so error
// messages render deterministically.
type Params []Param

func (p Params) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, kv := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", kv.Key, kv.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// InvalidURL: the endpoint URL could not be formed.
type InvalidURL struct {
	URL string
}

func (r InvalidURL) Error() string { return "URL is not valid: " + r.URL }
func (InvalidURL) requestFailure() {}

// InvalidParameter: a request parameter was rejected before sending.
type InvalidParameter struct {
	Params Params
	Cause  string
}

func (r InvalidParameter) Error() string {
	return fmt.Sprintf("Parameter is not valid: %s, cause: %s", r.Params, r.Cause)
}
func (InvalidParameter) requestFailure() {}

// CannotEncodeString: a string payload could not be encoded to bytes.
type CannotEncodeString struct {
	Value string
}

func (r CannotEncodeString) Error() string {
	return "Could not encode \"" + r.Value + "\""
}
func (CannotEncodeString) requestFailure() {}

// EncodeFailed: the request body could not be serialized to JSON.
type EncodeFailed struct {
	Cause error
}

func (r EncodeFailed) Error() string {
	return "JSON could not be serialized because of error:\n" + r.Cause.Error()
}
func (r EncodeFailed) Unwrap() error { return r.Cause }
func (EncodeFailed) requestFailure() {}

// InvalidResponse: the transport returned something that isn't a usable
// response. Cause may be nil when nothing more specific is known.
type InvalidResponse struct {
	Cause error
}

func (r InvalidResponse) Error() string {
	if r.Cause == nil {
		return "Response is invalid"
	}
	return "Response is invalid: " + r.Cause.Error()
}
func (r InvalidResponse) Unwrap() error { return r.Cause }
func (InvalidResponse) responseFailure() {}

// UnacceptableStatusCode: the service answered with a non-2xx status; the
// parsed error envelope rides along for callers to inspect.
type UnacceptableStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

func (r UnacceptableStatusCode) Error() string {
	return fmt.Sprintf("Response status code was unacceptable: %d with message: %s.", r.StatusCode, r.Response.Message)
}
func (UnacceptableStatusCode) responseFailure() {}

// SerializeFailed: the response body could not be serialized into a generic
// value.
type SerializeFailed struct {
	Cause error
}

func (r SerializeFailed) Error() string {
	return "Response could not be serialized because of error:\n" + r.Cause.Error()
}
func (r SerializeFailed) Unwrap() error { return r.Cause }
func (SerializeFailed) serializationFailure() {}

// DecodeFailed: the response body could not be decoded into the caller's
// target type.
type DecodeFailed struct {
	Cause error
}

func (r DecodeFailed) Error() string {
	return "Response could not be decoded because of error:\n" + r.Cause.Error()
}
func (r DecodeFailed) Unwrap() error { return r.Cause }
func (DecodeFailed) serializationFailure() {}

// CannotConvert: the body was readable but not convertible to the target type.
type CannotConvert struct {
	Data       []byte
	TargetType string
}

func (r CannotConvert) Error() string {
	return "Response could not convert to \"" + r.TargetType + "\""
}
func (CannotConvert) serializationFailure() {}

// MediaError is the upload-processing error object the service embeds in its
// payload. It is decoded as-is and usable as an error value on its own.
type MediaError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e MediaError) Error() string {
	return fmt.Sprintf("%s[code:%d]: %s", e.Name, e.Code, e.Message)
}

// ProcessingFailed: the service reported a media-upload processing error.
// The message is the service's own, verbatim.
type ProcessingFailed struct {
	Err MediaError
}

func (r ProcessingFailed) Error() string { return r.Err.Message }
func (r ProcessingFailed) Unwrap() error { return r.Err }
func (ProcessingFailed) uploadFailure() {}
