package apierr

import (
	"errors"
	"io"
	"net/http"
	"syscall"
)

// Well-known service error codes callers branch on.
const (
	CodePageDoesNotExist     = 34
	CodeRateLimitExceeded    = 88
	CodeOverCapacity         = 130
	CodeInternalError        = 131
	CodeOverDailyStatusLimit = 185
	CodeDuplicateStatus      = 187
)

// IsRetryable says "worth another shot?" (backoff still on the caller).
func IsRetryable(err error) bool {
	// timeouts from net/http, http2, tls, etc.
	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	// flaky connections / short reads
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	sc, ok := statusCode(err)
	if !ok {
		return false
	}
	switch sc.StatusCode {
	case http.StatusRequestTimeout, // 408
		http.StatusTooEarly,            // 425
		http.StatusTooManyRequests,     // 429
		http.StatusInternalServerError, // 500
		http.StatusBadGateway,          // 502
		http.StatusServiceUnavailable,  // 503
		http.StatusGatewayTimeout:      // 504
		return true
	}
	return sc.Response.Contains(CodeRateLimitExceeded) ||
		sc.Response.Contains(CodeOverCapacity) ||
		sc.Response.Contains(CodeInternalError)
}

// IsRateLimited reports whether the service told us to slow down, either via
// HTTP 429 or via a rate-limit code in the error envelope.
func IsRateLimited(err error) bool {
	sc, ok := statusCode(err)
	if !ok {
		return false
	}
	return sc.StatusCode == http.StatusTooManyRequests ||
		sc.Response.Contains(CodeRateLimitExceeded) ||
		sc.Response.Contains(CodeOverDailyStatusLimit)
}

// IsDuplicate reports whether the service rejected the request as a duplicate.
func IsDuplicate(err error) bool {
	sc, ok := statusCode(err)
	if !ok {
		return false
	}
	return sc.Response.Contains(CodeDuplicateStatus)
}

func statusCode(err error) (UnacceptableStatusCode, bool) {
	reason, ok := ResponseReason(err)
	if !ok {
		return UnacceptableStatusCode{}, false
	}
	sc, ok := reason.(UnacceptableStatusCode)
	return sc, ok
}
