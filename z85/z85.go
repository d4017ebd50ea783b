// Package z85 implements ZeroMQ Base-85 encoding as specified by
// https://rfc.zeromq.org/spec/32/Z85/.
//
// Z85 maps each 4-byte group to 5 characters of an 85-symbol alphabet,
// so encode input length must be divisible by 4 and decode input length
// must be divisible by 5.
package z85

import (
	"github.com/corvide/z85kit/errors"
)

var (
	ErrInvalidLength = errors.New("z85: invalid input length")
	ErrInvalidChar   = errors.New("z85: invalid character")
	ErrOverflow      = errors.New("z85: group value overflows 32 bits")
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"

const invalid = 0xFF

var decoder [256]byte

func init() {
	for i := range decoder {
		decoder[i] = invalid
	}
	for v, c := range []byte(alphabet) {
		decoder[c] = byte(v)
	}
}

// EncodedLen returns the Z85 encoded length for n source bytes.
func EncodedLen(n int) int { return n / 4 * 5 }

// DecodedLen returns the decoded length for n bytes of Z85 encoded data.
func DecodedLen(n int) int { return n / 5 * 4 }

// Encode encodes src into EncodedLen(len(src)) bytes of dst.
// len(src) must be divisible by 4.
func Encode(dst, src []byte) (int, error) {
	if len(src)%4 != 0 {
		return 0, errors.Wrapf(ErrInvalidLength, "source length %d not divisible by 4", len(src))
	}

	di := 0
	for si := 0; si < len(src); si += 4 {
		value := uint32(src[si])<<24 | uint32(src[si+1])<<16 | uint32(src[si+2])<<8 | uint32(src[si+3])

		for i := 4; i >= 0; i-- {
			dst[di+i] = alphabet[value%85]
			value /= 85
		}
		di += 5
	}

	return di, nil
}

// EncodeToString returns the Z85 encoding of src.
func EncodeToString(src []byte) (string, error) {
	dst := make([]byte, EncodedLen(len(src)))
	n, err := Encode(dst, src)
	if err != nil {
		return "", err
	}
	return string(dst[:n]), nil
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst.
// len(src) must be divisible by 5.
func Decode(dst, src []byte) (int, error) {
	if len(src)%5 != 0 {
		return 0, errors.Wrapf(ErrInvalidLength, "source length %d not divisible by 5", len(src))
	}

	di := 0
	for si := 0; si < len(src); si += 5 {
		var value uint64
		for i := 0; i < 5; i++ {
			v := decoder[src[si+i]]
			if v == invalid {
				return 0, errors.Wrapf(ErrInvalidChar, "character %q at position %d", src[si+i], si+i)
			}
			value = value*85 + uint64(v)
		}
		if value > 0xFFFFFFFF {
			return 0, errors.Wrapf(ErrOverflow, "at position %d", si)
		}

		dst[di] = byte(value >> 24)
		dst[di+1] = byte(value >> 16)
		dst[di+2] = byte(value >> 8)
		dst[di+3] = byte(value)
		di += 4
	}

	return di, nil
}

// DecodeString returns the bytes represented by the Z85 string s.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
