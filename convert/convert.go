// Package convert translates payloads between the Z85 and base64
// text encodings, in either a bare ("raw") form or a data URL form.
//
// The raw Z85 wire form is "<z85-text>:<pad-count>", the data URL form
// is "data:<mime-type>;<z85|base64>,<payload>".
package convert

import (
	"strings"

	"github.com/corvide/z85kit/encoding"
	"github.com/corvide/z85kit/errors"
)

var (
	ErrMalformedDataURL     = errors.New("convert: malformed data URL")
	ErrMarkerMismatch       = errors.New("convert: data URL encoding marker mismatch")
	ErrUnsupportedDirection = errors.New("convert: cannot convert raw input to a data URL, MIME type unknown")
)

const (
	dataURLPrefix = "data:"

	markerZ85    = ";z85,"
	markerBase64 = ";base64,"
)

// Kind selects the envelope of a conversion input or output.
type Kind uint8

const (
	// Raw is a bare encoded payload ("<z85-text>:<pad>" or base64 text).
	Raw Kind = iota
	// DataURL is a payload wrapped as "data:<mime>;<encoding>,<payload>".
	DataURL
)

func (k Kind) String() string {
	switch k {
	case Raw:
		return "raw"
	case DataURL:
		return "data-url"
	}
	return "unknown"
}

// ParseKind parses the textual form produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "raw":
		return Raw, nil
	case "data-url":
		return DataURL, nil
	}
	return Raw, errors.Newf("unknown envelope kind %q, expected raw or data-url", s)
}

// Options selects the envelope kinds of a conversion.
// The zero value is a raw to raw conversion.
type Options struct {
	Input  Kind
	Output Kind
}

func NewOptions(input, output Kind) Options {
	return Options{Input: input, Output: output}
}

//

var (
	codecZ85    = encoding.NewEncodeDecoderZ85()
	codecBase64 = encoding.NewEncodeDecoderBase64()
)

// EncodeZ85 encodes arbitrary bytes into the "<z85-text>:<pad>" form.
// Any buffer is encodable, empty input yields ":0".
func EncodeZ85(buf []byte) string {
	text, err := codecZ85.Encode(buf)
	if err != nil {
		// Encode pads the buffer to the block size itself, the
		// underlying codec cannot reject it.
		panic(err)
	}
	return string(text)
}

// DecodeZ85 decodes the "<z85-text>:<pad>" form back into bytes.
func DecodeZ85(s string) ([]byte, error) {
	return codecZ85.Decode([]byte(s))
}

// Z85ToBase64 converts a raw "<z85-text>:<pad>" payload to base64 text.
func Z85ToBase64(s string) (string, error) {
	buf, err := codecZ85.Decode([]byte(s))
	if err != nil {
		return "", err
	}
	text, err := codecBase64.Encode(buf)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// Base64ToZ85 converts base64 text to a raw "<z85-text>:<pad>" payload.
func Base64ToZ85(s string) (string, error) {
	buf, err := codecBase64.Decode([]byte(s))
	if err != nil {
		return "", err
	}
	return EncodeZ85(buf), nil
}

//

// direction fixes one side of the two-way conversion: the data URL
// markers of its source and destination encodings and the raw payload
// conversion itself.
type direction struct {
	srcMarker string
	dstMarker string
	convert   func(string) (string, error)
}

var (
	directionZ85ToBase64 = direction{
		srcMarker: markerZ85,
		dstMarker: markerBase64,
		convert:   Z85ToBase64,
	}
	directionBase64ToZ85 = direction{
		srcMarker: markerBase64,
		dstMarker: markerZ85,
		convert:   Base64ToZ85,
	}
)

// splitDataURL splits "data:<mime>;<marker><payload>" around the
// direction's source marker. A payload carrying the opposite marker is
// reported as a mismatch, distinct from a missing marker.
func (d direction) splitDataURL(s string) (mime, payload string, err error) {
	if !strings.HasPrefix(s, dataURLPrefix) {
		return "", "", errors.Wrapf(ErrMalformedDataURL, "missing %q prefix", dataURLPrefix)
	}

	i := strings.Index(s, d.srcMarker)
	if i < 0 {
		other := markerZ85
		if d.srcMarker == markerZ85 {
			other = markerBase64
		}
		if strings.Contains(s, other) {
			return "", "", errors.Wrapf(ErrMarkerMismatch, "found %q, expected %q", other, d.srcMarker)
		}
		return "", "", errors.Wrapf(ErrMalformedDataURL, "missing %q marker", d.srcMarker)
	}

	return s[len(dataURLPrefix):i], s[i+len(d.srcMarker):], nil
}

func (d direction) withOptions(s string, opts Options) (string, error) {
	switch opts {
	case Options{Input: Raw, Output: Raw}:
		return d.convert(s)

	case Options{Input: DataURL, Output: DataURL}:
		mime, payload, err := d.splitDataURL(s)
		if err != nil {
			return "", err
		}
		converted, err := d.convert(payload)
		if err != nil {
			return "", err
		}
		return dataURLPrefix + mime + d.dstMarker + converted, nil

	case Options{Input: DataURL, Output: Raw}:
		_, payload, err := d.splitDataURL(s)
		if err != nil {
			return "", err
		}
		return d.convert(payload)

	case Options{Input: Raw, Output: DataURL}:
		return "", ErrUnsupportedDirection
	}

	return "", errors.Newf("unknown conversion options %v", opts)
}

// Z85ToBase64WithOptions converts Z85 to base64 honoring the envelope
// kinds requested for each side.
func Z85ToBase64WithOptions(s string, opts Options) (string, error) {
	return directionZ85ToBase64.withOptions(s, opts)
}

// Base64ToZ85WithOptions converts base64 to Z85 honoring the envelope
// kinds requested for each side.
func Base64ToZ85WithOptions(s string, opts Options) (string, error) {
	return directionBase64ToZ85.withOptions(s, opts)
}
