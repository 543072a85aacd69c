package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across use cases. Handlers map these to HTTP
// status codes; repositories translate driver errors into them.
var (
	ErrNotFound      = goerr.New("not found")
	ErrNotActive     = goerr.New("procurement is not active")
	ErrAlreadyJoined = goerr.New("already joined this procurement")
	ErrValidation    = goerr.New("validation failed")
)
