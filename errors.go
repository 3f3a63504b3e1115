package nanobanana

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyPrompt is returned when a request is sent without prompt text.
var ErrEmptyPrompt = errors.New("empty prompt")

// ErrMissingAPIKey is returned when a client is created without an API key.
var ErrMissingAPIKey = errors.New("API key is not set")

// Sentinels for the fault kinds raised by this module.
// Each typed error below matches its sentinel through errors.Is.
var (
	ErrUnknownTemplate          = errors.New("unknown template")
	ErrMissingRequiredVariables = errors.New("missing required variables")
	ErrMissingSubject           = errors.New("missing subject")
	ErrMalformedResponse        = errors.New("malformed response")
	ErrNoImagePayload           = errors.New("no image payload")
	ErrUnsupportedImageFormat   = errors.New("unsupported image format")
	ErrFileOperation            = errors.New("file operation failed")
)

// ErrorCategory classifies errors by how they should be handled.
type ErrorCategory string

const (
	// ErrorTransient indicates the error is temporary and the operation can be retried.
	// Examples: rate limits, temporary network issues, server overload.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates the error is not recoverable through retry.
	// Examples: invalid API key, insufficient permissions, model not found.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the user provided invalid input that must be corrected.
	// Examples: malformed request, invalid parameters, content policy violation.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that provides information about how it should be handled.
type CategorizedError interface {
	error
	Category() ErrorCategory
	Retryable() bool           // convenience: returns true if Category == ErrorTransient
	StatusCode() int           // HTTP status code if applicable, 0 otherwise
	RetryAfter() time.Duration // suggested retry delay from server, 0 if not available
}

// Error is a categorized API error with metadata for error handling decisions.
type Error struct {
	Msg        string
	Cat        ErrorCategory
	Code       int           // HTTP status code, 0 if not applicable
	RetryDelay time.Duration // from Retry-After header, 0 if not available
	Body       string        // response body as returned by the API, if any
	Cause      error         // underlying error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// Retryable returns true if the error is transient and can be retried.
func (e *Error) Retryable() bool {
	return e.Cat == ErrorTransient
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Code
}

// RetryAfter returns the suggested retry delay, or 0 if not available.
func (e *Error) RetryAfter() time.Duration {
	return e.RetryDelay
}

// NewTransientError creates a transient error that can be retried.
func NewTransientError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorTransient, Code: statusCode, Cause: cause}
}

// NewPermanentError creates a permanent error that should not be retried.
func NewPermanentError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorPermanent, Code: statusCode, Cause: cause}
}

// NewUserInputError creates an error indicating invalid user input.
func NewUserInputError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorUserInput, Code: statusCode, Cause: cause}
}

// CategorizeStatus determines the error category from an HTTP status code.
func CategorizeStatus(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return ErrorTransient // Server error
	case code == 401 || code == 403:
		return ErrorPermanent // Authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput // Bad request or not found
	default:
		return ErrorPermanent
	}
}

// NewStatusError creates a categorized error for a failed HTTP exchange.
func NewStatusError(code int, body string, retryAfter time.Duration) *Error {
	return &Error{
		Msg:        fmt.Sprintf("API request failed: %d - %s", code, strings.TrimSpace(body)),
		Cat:        CategorizeStatus(code),
		Code:       code,
		RetryDelay: retryAfter,
		Body:       body,
	}
}

// IsTransient returns true if the error is categorized as transient.
// It checks if the error or any wrapped error implements CategorizedError.
func IsTransient(err error) bool {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ErrorTransient
	}
	return false
}

// IsPermanent returns true if the error is categorized as permanent.
func IsPermanent(err error) bool {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ErrorPermanent
	}
	return false
}

// IsUserInput returns true if the error is categorized as user input error.
func IsUserInput(err error) bool {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ErrorUserInput
	}
	return false
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}

// UnknownTemplateError is returned when a template key is not registered.
type UnknownTemplateError struct {
	Key       string
	Available []string
}

func (e *UnknownTemplateError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("template %q not found (no templates registered)", e.Key)
	}
	return fmt.Sprintf("template %q not found (available: %s)", e.Key, strings.Join(e.Available, ", "))
}

func (e *UnknownTemplateError) Is(target error) bool { return target == ErrUnknownTemplate }

// MissingVariablesError is returned when a prompt is generated while required
// variables are unset or empty. Missing preserves the template's declared order.
type MissingVariablesError struct {
	Template string
	Missing  []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("template %q: required variables not set: %s", e.Template, strings.Join(e.Missing, ", "))
}

func (e *MissingVariablesError) Is(target error) bool { return target == ErrMissingRequiredVariables }

// MissingSubjectError is returned when a builder that needs a subject has none.
type MissingSubjectError struct {
	Builder string
}

func (e *MissingSubjectError) Error() string {
	return fmt.Sprintf("%s prompt: subject is not set", e.Builder)
}

func (e *MissingSubjectError) Is(target error) bool { return target == ErrMissingSubject }

// MalformedResponseError is returned when a response lacks a required field.
type MalformedResponseError struct {
	Field  string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s %s", e.Field, e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// NoImagePayloadError is returned when a well-formed response carries no image data.
type NoImagePayloadError struct {
	ResponseID   string
	ModelVersion string
}

func (e *NoImagePayloadError) Error() string {
	return fmt.Sprintf("no image payload in response %q (model %s)", e.ResponseID, e.ModelVersion)
}

func (e *NoImagePayloadError) Is(target error) bool { return target == ErrNoImagePayload }

// UnsupportedImageFormatError is returned when a reference image is not jpeg, png, gif or webp.
type UnsupportedImageFormatError struct {
	Source   string
	MimeType string
}

func (e *UnsupportedImageFormatError) Error() string {
	return fmt.Sprintf("unsupported image format %q: %s", e.MimeType, e.Source)
}

func (e *UnsupportedImageFormatError) Is(target error) bool { return target == ErrUnsupportedImageFormat }

// FileError represents a failure reported by the filesystem collaborator.
type FileError struct {
	Op   string // "read", "mkdir", "write"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) Is(target error) bool { return target == ErrFileOperation }

// ImageError represents an error during image processing.
type ImageError struct {
	Op     string // "decode" or "fetch"
	Source string // the image URL, path or "base64"
	Err    error  // underlying error
}

// Error returns a formatted error message describing the image processing failure.
func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s error for %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ImageError) Unwrap() error {
	return e.Err
}
