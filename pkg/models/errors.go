package models

import "errors"

// ErrConfiguration marks every error caused by bad caller input, as opposed
// to failures reported by the server.
var ErrConfiguration = errors.New("configuration error")
