package service

import "errors"

// ErrValidation marks rejected input. Handlers translate it to a 400 and
// never persist anything for the request.
var ErrValidation = errors.New("validation failed")
