package z85

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test vector from https://rfc.zeromq.org/spec/32/Z85/
var (
	rfcBytes = []byte{0x86, 0x4F, 0xD2, 0x6F, 0xB5, 0x59, 0xF7, 0x5B}
	rfcText  = "HelloWorld"
)

func TestEncodeToString(t *testing.T) {
	s, err := EncodeToString(rfcBytes)
	require.NoError(t, err)
	assert.Equal(t, rfcText, s)
}

func TestDecodeString(t *testing.T) {
	buf, err := DecodeString(rfcText)
	require.NoError(t, err)
	assert.Equal(t, rfcBytes, buf)
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0, 0, 0, 0},
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("Hell"),
		[]byte("Hello Go!..."),
		make([]byte, 1024),
	}

	for _, buf := range cases {
		s, err := EncodeToString(buf)
		require.NoError(t, err)
		assert.Equal(t, EncodedLen(len(buf)), len(s))

		got, err := DecodeString(s)
		require.NoError(t, err)
		assert.Equal(t, buf, got)
	}
}

func TestEncodeInvalidLength(t *testing.T) {
	_, err := EncodeToString([]byte("odd"))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestDecodeInvalidLength(t *testing.T) {
	_, err := DecodeString("Hello!")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestDecodeInvalidChar(t *testing.T) {
	_, err := DecodeString("ab_cd")
	assert.ErrorIs(t, err, ErrInvalidChar)

	_, err = DecodeString("ab cd")
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestDecodeOverflow(t *testing.T) {
	// "#" is the highest alphabet symbol, five of them decode above 2^32-1.
	_, err := DecodeString("#####")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestLen(t *testing.T) {
	assert.Equal(t, 10, EncodedLen(8))
	assert.Equal(t, 8, DecodedLen(10))
	assert.Equal(t, 0, EncodedLen(0))
	assert.Equal(t, 0, DecodedLen(0))
}
