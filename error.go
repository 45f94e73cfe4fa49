package faqify

import (
	"errors"
	"fmt"
	"time"
)

// Application error codes.
//
// The fetch family (ETIMEOUT, EFORBIDDEN, ENOTFOUND, ENETWORK) is produced by
// Fetcher implementations once every request profile has failed. The
// generation family (EAUTH, ERATELIMIT, EQUOTA, EUNAVAILABLE, ENOFAQS) is
// produced by the completion client and the count reconciler.
const (
	EINTERNAL      = "internal"
	EINVALID       = "invalid"
	ENOTFOUND      = "not_found"
	ETIMEOUT       = "timeout"
	EFORBIDDEN     = "forbidden"
	ENETWORK       = "network"
	EUNPROCESSABLE = "unprocessable"
	EAUTH          = "unauthorized"
	ERATELIMIT     = "rate_limited"
	EQUOTA         = "quota_exceeded"
	EUNAVAILABLE   = "unavailable"
	ENOFAQS        = "no_faqs"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
//
// Any non-application error (such as a disk error) should be reported as an
// EINTERNAL error and the human user should only see "Internal error" as the
// message. These low-level internal error details should only be logged and
// reported to the operator of the application (not the end user).
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Optional low-level detail, e.g. the HTTP status that caused the error.
	Details string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("faqify error: code=%s message=%s details=%s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("faqify error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorDetails unwraps an application error and returns its details.
func ErrorDetails(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return ""
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetails returns a copy of e carrying the given low-level detail.
func (e *Error) WithDetails(format string, args ...any) *Error {
	cp := *e
	cp.Details = fmt.Sprintf(format, args...)
	return &cp
}

// userMessages maps error codes to actionable messages shown to end users.
var userMessages = map[string]string{
	EINVALID:       "The request is invalid. Check the source and the number of FAQs requested.",
	ENOTFOUND:      "The page could not be found. Check that the URL is correct.",
	ETIMEOUT:       "The website took too long to respond. Try again later or paste the text manually.",
	EFORBIDDEN:     "This website blocks automated access. Paste the text manually instead.",
	ENETWORK:       "The website could not be reached. Check the URL or paste the text manually.",
	EUNPROCESSABLE: "Not enough readable content was found. Paste the text manually instead.",
	EAUTH:          "The AI service rejected the configured credentials.",
	ERATELIMIT:     "The AI service is receiving too many requests. Wait a moment and try again.",
	EQUOTA:         "The AI service quota has been exhausted. Try again later.",
	EUNAVAILABLE:   "The AI service is temporarily unavailable. Try again shortly.",
	ENOFAQS:        "No FAQs could be generated from this content.",
}

// UserMessage returns an actionable message for the error suitable for
// presentation to an end user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := userMessages[ErrorCode(err)]; ok {
		return msg
	}
	return "Internal error."
}

// RetryAfter returns the recommended delay before a caller retries a request
// that failed with the given code. Zero means retrying is not recommended.
func RetryAfter(code string) time.Duration {
	switch code {
	case ERATELIMIT:
		return 30 * time.Second
	case EUNAVAILABLE, ETIMEOUT:
		return 10 * time.Second
	case EQUOTA:
		return time.Hour
	default:
		return 0
	}
}

// ErrorEnvelope is the single failure shape returned across the core boundary.
type ErrorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorEnvelope builds the envelope for err. The message is the
// user-facing message for the error code; details carry the application
// error message.
func NewErrorEnvelope(err error) ErrorEnvelope {
	env := ErrorEnvelope{Error: true, Message: UserMessage(err)}
	if ErrorCode(err) != EINTERNAL {
		env.Details = ErrorMessage(err)
		if d := ErrorDetails(err); d != "" {
			env.Details += " (" + d + ")"
		}
	}
	return env
}
