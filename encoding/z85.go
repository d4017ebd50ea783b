package encoding

import (
	"bytes"
	"strconv"

	"github.com/corvide/z85kit/errors"
	"github.com/corvide/z85kit/z85"
)

const (
	z85BlockSize = 4
	padDelimiter = ':'
)

// EncodeDecoderZ85 makes arbitrary-length buffers safe for the 4-byte
// Z85 block encoding: Encode pads with zero bytes and appends the pad
// count as ":<n>", Decode strips exactly that many trailing bytes.
//
// The Z85 alphabet itself contains ':', so the pad delimiter is always
// the LAST colon of the payload.
type EncodeDecoderZ85 struct{}

var _ EncodeDecoder = &EncodeDecoderZ85{}

//

func (e *EncodeDecoderZ85) Encode(buf []byte) ([]byte, error) {
	pad := (z85BlockSize - len(buf)%z85BlockSize) % z85BlockSize

	padded := buf
	if pad > 0 {
		padded = make([]byte, len(buf)+pad)
		copy(padded, buf)
	}

	text, err := z85.EncodeToString(padded)
	if err != nil {
		return nil, err
	}

	return []byte(text + string(padDelimiter) + strconv.Itoa(pad)), nil
}

func (e *EncodeDecoderZ85) Decode(buf []byte) ([]byte, error) {
	i := bytes.LastIndexByte(buf, padDelimiter)
	if i < 0 {
		return nil, errors.Wrapf(ErrMalformedPayload, "no %q delimiter in %d bytes of input", padDelimiter, len(buf))
	}

	pad, err := strconv.Atoi(string(buf[i+1:]))
	if err != nil || pad < 0 {
		return nil, errors.Wrapf(ErrInvalidPadding, "%q is not a non-negative integer", string(buf[i+1:]))
	}

	decoded, err := z85.DecodeString(string(buf[:i]))
	if err != nil {
		return nil, err
	}

	if pad > len(decoded) {
		return nil, errors.Wrapf(ErrInvalidPadding, "pad %d exceeds decoded length %d", pad, len(decoded))
	}

	return decoded[:len(decoded)-pad], nil
}

func NewEncodeDecoderZ85() *EncodeDecoderZ85 {
	return &EncodeDecoderZ85{}
}
