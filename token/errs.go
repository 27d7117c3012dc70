package token

import "errors"

var (
	ErrNumber = errors.New("number")
)
