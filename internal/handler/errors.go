package handler

import "errors"

// errNoHandlersAreCreated means the server configuration enables neither
// transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
