package domain

import "errors"

var (
	ErrUnknownTimezone   = errors.New("unknown timezone")
	ErrNaiveInstant      = errors.New("instant has no timezone offset")
	ErrRouteNotFound     = errors.New("route not found")
	ErrContainerNotFound = errors.New("container not found")
	ErrUnknownPort       = errors.New("unknown port")
	ErrInvalidInstant    = errors.New("invalid instant")
)
