package apierr_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"golang.org/x/sync/errgroup"

	"github.com/chirpkit/apierr"
)

// doGet stands in for the transport layer: perform the request, classify
// anything non-2xx through the taxonomy.
func doGet(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, &apierr.ResponseFailed{Reason: apierr.InvalidResponse{Cause: err}}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.ResponseFailed{Reason: apierr.InvalidResponse{Cause: err}}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apierr.ResponseFailed{Reason: apierr.UnacceptableStatusCode{
			StatusCode: resp.StatusCode,
			Response:   apierr.Parse(body),
		}}
	}
	return body, nil
}

func TestFlow_NotFoundEnvelope(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	target := "https://api.chirp.test/1.1/statuses/show.json?id=1"
	httpmock.RegisterResponder("GET", target,
		httpmock.NewStringResponder(404, `{"errors":[{"message":"Sorry, that page does not exist","code":34}]}`))

	_, err := doGet(target)
	if err == nil {
		t.Fatalf("expected an error for 404")
	}

	reason, ok := apierr.ResponseReason(err)
	if !ok {
		t.Fatalf("ResponseReason = absent, want present")
	}
	sc, ok := reason.(apierr.UnacceptableStatusCode)
	if !ok {
		t.Fatalf("reason = %T, want UnacceptableStatusCode", reason)
	}
	if sc.StatusCode != 404 {
		t.Fatalf("StatusCode = %d, want 404", sc.StatusCode)
	}
	if !sc.Response.Contains(apierr.CodePageDoesNotExist) {
		t.Fatalf("envelope should contain code 34, got %#v", sc.Response)
	}

	want := "Response status code was unacceptable: 404 with message: Sorry, that page does not exist."
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFlow_RateLimitedEnvelope(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	target := "https://api.chirp.test/1.1/statuses/update.json"
	httpmock.RegisterResponder("GET", target,
		httpmock.NewStringResponder(429, `{"errors":[{"message":"Rate limit exceeded","code":88}]}`))

	_, err := doGet(target)
	if err == nil {
		t.Fatalf("expected an error for 429")
	}
	// callers wrap before bubbling up; classification must survive that
	wrapped := fmt.Errorf("update status: %w", err)

	if !apierr.IsRateLimited(wrapped) {
		t.Fatalf("IsRateLimited = false, want true")
	}
	if !apierr.IsRetryable(wrapped) {
		t.Fatalf("IsRetryable = false, want true")
	}
	if apierr.IsDuplicate(wrapped) {
		t.Fatalf("IsDuplicate = true, want false")
	}
}

func TestFlow_NonEnvelopeBodyFallsBack(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	target := "https://api.chirp.test/1.1/statuses/home_timeline.json"
	httpmock.RegisterResponder("GET", target,
		httpmock.NewStringResponder(502, "<html>bad gateway</html>"))

	_, err := doGet(target)
	reason, ok := apierr.ResponseReason(err)
	if !ok {
		t.Fatalf("ResponseReason = absent, want present")
	}
	sc := reason.(apierr.UnacceptableStatusCode)
	if sc.Response.Code != 0 || len(sc.Response.Errors) != 0 {
		t.Fatalf("fallback expected, got %#v", sc.Response)
	}
	if sc.Response.Message != "<html>bad gateway</html>" {
		t.Fatalf("Message = %q, want raw body", sc.Response.Message)
	}
}

func TestConcurrent_ParseAndWrap(t *testing.T) {
	body := []byte(`{"errors":[{"message":"a","code":1},{"message":"b","code":2}]}`)
	want := apierr.Parse(body)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			got := apierr.Parse(body)
			if got.Message != want.Message || got.Code != want.Code || len(got.Errors) != len(want.Errors) {
				return fmt.Errorf("concurrent parse diverged: %#v", got)
			}
			if !got.Contains(2) {
				return errors.New("concurrent Contains lost an entry")
			}
			ce := apierr.Wrap(errors.New("x"))
			if _, ok := apierr.UnknownCause(ce); !ok {
				return errors.New("concurrent Wrap misclassified")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
