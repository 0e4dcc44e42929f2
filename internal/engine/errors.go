package engine

import "errors"

var (
	// ErrNotReady is returned by Query on a strict-init engine that has
	// never completed a successful catalog load.
	ErrNotReady = errors.New("engine: catalog not loaded")

	// ErrInvalidRecord is returned by Add for records missing an id or a
	// usable keyword list.
	ErrInvalidRecord = errors.New("engine: invalid record")
)
