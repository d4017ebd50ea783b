package encoding

import (
	"encoding/base64"

	"github.com/corvide/z85kit/errors"
)

// EncodeDecoderBase64 is the standard base64 alphabet with "=" padding.
// Base64 padding characters preserve the original length on their own,
// so unlike Z85 no auxiliary pad count travels with the payload.
type EncodeDecoderBase64 struct{}

var _ EncodeDecoder = &EncodeDecoderBase64{}

//

func (e *EncodeDecoderBase64) Encode(buf []byte) ([]byte, error) {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(buf)))
	base64.StdEncoding.Encode(dst, buf)
	return dst, nil
}

func (e *EncodeDecoderBase64) Decode(buf []byte) ([]byte, error) {
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(buf)))
	n, err := base64.StdEncoding.Decode(dst, buf)
	if err != nil {
		return nil, errors.Wrap(err, "base64 decode")
	}
	return dst[:n], nil
}

func NewEncodeDecoderBase64() *EncodeDecoderBase64 {
	return &EncodeDecoderBase64{}
}
