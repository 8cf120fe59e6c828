package docmodel

import "errors"

var (
	ErrNotLoaded     = errors.New("no document loaded")
	ErrNotFound      = errors.New("node not found")
	ErrCircularMove  = errors.New("cannot move node into its own descendant")
	ErrRootImmutable = errors.New("cannot detach the root node")
	ErrDuplicateName = errors.New("duplicate sibling name")
)
