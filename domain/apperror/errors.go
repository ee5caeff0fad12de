package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Kind string

const (
	KindConfig   Kind = "config"
	KindUpstream Kind = "upstream"
	KindParse    Kind = "parse"
	KindInternal Kind = "internal"
)

const (
	MessageNotConfigured  = "YouTube API key not configured"
	MessageSearchFailed   = "Failed to fetch from YouTube API"
	MessageDetailsFailed  = "Failed to fetch video details"
	MessageParseFailed    = "Failed to parse YouTube API response"
	MessageInternalFailed = "Internal server error"
)

// Error is the typed failure surfaced to callers of the aggregation
type Error struct {
	Kind    Kind
	Op      string
	Message string
	// Details carries the upstream error body when one was returned.
	Details json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotConfigured(op string) *Error {
	return &Error{Kind: KindConfig, Op: op, Message: MessageNotConfigured}
}

func Upstream(op string, err error, message string, details json.RawMessage) *Error {
	return &Error{Kind: KindUpstream, Op: op, Message: message, Details: details, Err: err}
}

func Parse(op string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Message: MessageParseFailed, Err: err}
}

func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Message: MessageInternalFailed, Err: err}
}

// KindOf reports the kind of err; untyped errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message for err. It never leaks the wrapped cause.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return MessageInternalFailed
}

// DetailsOf returns the upstream body attached to err, if any.
func DetailsOf(err error) json.RawMessage {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}
