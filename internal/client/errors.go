package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing required arguments")
	ErrNotLoggedIn    = errors.New("not logged in, run login first")
)
