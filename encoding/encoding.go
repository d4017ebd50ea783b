// Package encoding provides binary-to-text codecs behind a single
// EncodeDecoder interface.
package encoding

import (
	"github.com/corvide/z85kit/errors"
)

type EncodeDecoder interface {
	Encode([]byte) ([]byte, error)
	Decode([]byte) ([]byte, error)
}

var (
	ErrMalformedPayload = errors.New("encoding: malformed payload, expected <data>:<padding>")
	ErrInvalidPadding   = errors.New("encoding: invalid padding")
)
