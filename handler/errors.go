package handler

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrSerialize     = errors.New("serialize error")
	ErrUnknownFormat = errors.New("unknown format")
)

// ParseError reports malformed input for a given format. Line is 1-based
// and 0 when no position is known.
type ParseError struct {
	Format string
	Line   int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Msg)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrParse
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func Parsef(format string, line int, msg string, args ...any) *ParseError {
	return &ParseError{Format: format, Line: line, Msg: fmt.Sprintf(msg, args...)}
}

// SerializeError reports an unserializable tree: an unknown node kind or a
// cycle discovered during traversal. It indicates a model invariant was
// broken.
type SerializeError struct {
	Format string
	Msg    string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Format, e.Msg)
}

func (e *SerializeError) Is(target error) bool {
	return target == ErrSerialize
}

func Serializef(format, msg string, args ...any) *SerializeError {
	return &SerializeError{Format: format, Msg: fmt.Sprintf(msg, args...)}
}
