package errs

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// External Integration Errors
var (
	ErrMailDelivery      = errors.New("mail delivery failed")
	ErrStatsFetch        = errors.New("stats fetch failed")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrSpamRejected      = errors.New("message rejected as spam")
	ErrTimeout           = errors.New("timeout")
)

// NewMailDeliveryError wraps a mail relay failure. The inquiry row is
// already committed when this surfaces, so it maps to a retry-later
// notice rather than a hard failure.
func NewMailDeliveryError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrMailDelivery,
		Details:    "Could not send the notification email, please try again later",
		Cause:      cause,
	}
}

func NewStatsFetchError(stage string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStatsFetch,
		Details:    fmt.Sprintf("GitHub API call failed during %s", stage),
		Cause:      cause,
	}
}

func NewRateLimitError(window string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimitExceeded,
		Details:    fmt.Sprintf("Too many requests, limit is %s", window),
	}
}

// NewSpamRejectedError surfaces as a generic notice; nothing is
// persisted for a spam submission.
func NewSpamRejectedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrSpamRejected,
		Details:    "Your message could not be accepted",
	}
}

func NewTimeoutError(operation string, timeout time.Duration) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusGatewayTimeout,
		err:        ErrTimeout,
		Details:    fmt.Sprintf("%s timed out after %v", operation, timeout),
	}
}

func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func IsSpamRejected(err error) bool {
	return errors.Is(err, ErrSpamRejected)
}

func IsMailDelivery(err error) bool {
	return errors.Is(err, ErrMailDelivery)
}

func IsStatsFetch(err error) bool {
	return errors.Is(err, ErrStatsFetch)
}
