package client

import "errors"

var (
	errUnexpectedPayload = errors.New("unexpected payload shape")

	// ErrUnexpectedPayload is returned when a GitHub response does not have
	// the JSON shape a typed accessor needs.
	ErrUnexpectedPayload = errUnexpectedPayload
)
