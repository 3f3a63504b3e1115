package retry

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"google.golang.org/genai"

	ai "github.com/spetersoncode/nanobanana"
)

// IsTransient reports whether err should be retried.
// Errors implementing ai.CategorizedError are decided by their category.
// Otherwise genai API errors are judged by status code, and network
// failures (timeouts, resets, refused connections) count as transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce ai.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ai.ErrorTransient
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isTransientStatusCode(apiErr.Code)
	}

	return isTransientNetworkError(err)
}

func isTransientStatusCode(code int) bool {
	return code == 429 || (code >= 500 && code < 600)
}

func isTransientNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && isTransientNetworkError(urlErr.Err) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.ETIMEDOUT:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"connection reset",
		"connection refused",
		"timeout",
		"temporary failure",
		"service unavailable",
		"too many requests",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
