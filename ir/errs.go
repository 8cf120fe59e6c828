package ir

import "errors"

var (
	ErrBadKind  = errors.New("bad node kind")
	ErrCycle    = errors.New("cycle detected")
	ErrMaxDepth = errors.New("max depth exceeded")
)
