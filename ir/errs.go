package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrDuplicateKey = errors.New("duplicate key")
)

func typeMismatch(y *Node, want Type) error {
	return fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, y.Path(), y.Type, want)
}
