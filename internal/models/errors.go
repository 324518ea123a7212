package models

import "errors"

var (
	ErrEmptySeries    = errors.New("series is empty")
	ErrInvalidPoint   = errors.New("invalid series point")
	ErrSeriesTooShort = errors.New("series shorter than reference length")
	ErrLogDomain      = errors.New("value out of log10 domain (<= -1)")
	ErrLabelCollision = errors.New("both libraries hold entries for the same label")
	ErrInvalidEntry   = errors.New("invalid corpus entry")
)
