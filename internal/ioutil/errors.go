package ioutil

import "errors"

// ErrNotFound indicates a data file could not be opened.
var ErrNotFound = errors.New("data file not found")

// ErrMalformed indicates a data file was short or contained a non-numeric token.
var ErrMalformed = errors.New("data file malformed")
