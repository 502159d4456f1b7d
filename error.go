// Package apierr is the error layer of the chirpkit REST client: a closed
// taxonomy of client failures plus lenient parsing of the service's JSON
// error envelope. It performs no I/O and holds no state; transport and
// serialization collaborators construct these values and hand them up.
package apierr

import "errors"

// ClientError is implemented by every top-level error in the taxonomy:
// RequestFailed, ResponseFailed, SerializationFailed, UploadFailed, Unknown.
type ClientError interface {
	error
	clientError()
}

// RequestFailed reports a request that could not be built.
type RequestFailed struct {
	Reason RequestFailureReason
}

func (e *RequestFailed) Error() string { return e.Reason.Error() }
func (e *RequestFailed) Unwrap() error { return e.Reason }
func (*RequestFailed) clientError() {}

// ResponseFailed reports a response that arrived but was invalid or carried
// an unacceptable status code.
type ResponseFailed struct {
	Reason ResponseFailureReason
}

func (e *ResponseFailed) Error() string { return e.Reason.Error() }
func (e *ResponseFailed) Unwrap() error { return e.Reason }
func (*ResponseFailed) clientError() {}

// SerializationFailed reports a response body that could not be turned into
// a usable value.
type SerializationFailed struct {
	Reason SerializationFailureReason
}

func (e *SerializationFailed) Error() string { return e.Reason.Error() }
func (e *SerializationFailed) Unwrap() error { return e.Reason }
func (*SerializationFailed) clientError() {}

// UploadFailed reports a media-upload processing error from the service.
type UploadFailed struct {
	Reason UploadFailureReason
}

func (e *UploadFailed) Error() string { return e.Reason.Error() }
func (e *UploadFailed) Unwrap() error { return e.Reason }
func (*UploadFailed) clientError() {}

// Unknown is the escape hatch for causes the taxonomy doesn't classify.
// Its message is the wrapped cause's own, verbatim.
type Unknown struct {
	Cause error
}

func (e *Unknown) Error() string { return e.Cause.Error() }
func (e *Unknown) Unwrap() error { return e.Cause }
func (*Unknown) clientError() {}

// Wrap classifies an arbitrary error into the taxonomy. An error that is
// already a ClientError comes back unchanged, so Wrap(Wrap(err)) == Wrap(err);
// anything else becomes Unknown. Wrap(nil) is nil.
func Wrap(err error) ClientError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(ClientError); ok {
		return ce
	}
	return &Unknown{Cause: err}
}

// RequestReason returns the request-failure reason if err is (or wraps) a
// RequestFailed, for callers that branch on failure family without a full
// type switch.
func RequestReason(err error) (RequestFailureReason, bool) {
	var e *RequestFailed
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return nil, false
}

// ResponseReason returns the response-failure reason if err is (or wraps) a
// ResponseFailed.
func ResponseReason(err error) (ResponseFailureReason, bool) {
	var e *ResponseFailed
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return nil, false
}

// SerializationReason returns the serialization-failure reason if err is (or
// wraps) a SerializationFailed.
func SerializationReason(err error) (SerializationFailureReason, bool) {
	var e *SerializationFailed
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return nil, false
}

// UploadReason returns the upload-failure reason if err is (or wraps) an
// UploadFailed.
func UploadReason(err error) (UploadFailureReason, bool) {
	var e *UploadFailed
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return nil, false
}

// UnknownCause returns the wrapped cause if err is (or wraps) an Unknown.
func UnknownCause(err error) (error, bool) {
	var e *Unknown
	if errors.As(err, &e) {
		return e.Cause, true
	}
	return nil, false
}
