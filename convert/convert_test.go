package convert

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvide/z85kit/encoding"
)

const (
	helloZ85    = "nm=QNzY&b1A+]m^:1"
	helloBase64 = "SGVsbG8gV29ybGQ="
)

func TestZ85ToBase64(t *testing.T) {
	got, err := Z85ToBase64(helloZ85)
	require.NoError(t, err)
	assert.Equal(t, helloBase64, got)
}

func TestBase64ToZ85(t *testing.T) {
	got, err := Base64ToZ85(helloBase64)
	require.NoError(t, err)
	assert.Equal(t, helloZ85, got)

	back, err := Z85ToBase64(got)
	require.NoError(t, err)
	assert.Equal(t, helloBase64, back)
}

func TestEncodeDecodeZ85RoundTrip(t *testing.T) {
	data := []byte("Hello, World!")

	encoded := EncodeZ85(data)
	assert.Contains(t, encoded, ":")

	decoded, err := DecodeZ85(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestCrossCodecRoundTripSizes(t *testing.T) {
	for size := 0; size <= 64; size++ {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 7)
		}

		b64 := base64.StdEncoding.EncodeToString(data)

		z, err := Base64ToZ85(b64)
		require.NoError(t, err, "size %d", size)

		back, err := Z85ToBase64(z)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, b64, back, "size %d", size)
	}
}

func TestZ85ToBase64WithOptions(t *testing.T) {
	t.Run("raw to raw", func(t *testing.T) {
		got, err := Z85ToBase64WithOptions(helloZ85, NewOptions(Raw, Raw))
		require.NoError(t, err)
		assert.Equal(t, helloBase64, got)
	})

	t.Run("data url to data url", func(t *testing.T) {
		got, err := Z85ToBase64WithOptions("data:image/png;z85,"+helloZ85, NewOptions(DataURL, DataURL))
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,"+helloBase64, got)
	})

	t.Run("data url to raw", func(t *testing.T) {
		got, err := Z85ToBase64WithOptions("data:image/png;z85,"+helloZ85, NewOptions(DataURL, Raw))
		require.NoError(t, err)
		assert.Equal(t, helloBase64, got)
	})

	t.Run("raw to data url fails", func(t *testing.T) {
		_, err := Z85ToBase64WithOptions(helloZ85, NewOptions(Raw, DataURL))
		assert.ErrorIs(t, err, ErrUnsupportedDirection)
	})
}

func TestBase64ToZ85WithOptions(t *testing.T) {
	t.Run("raw to raw", func(t *testing.T) {
		got, err := Base64ToZ85WithOptions(helloBase64, NewOptions(Raw, Raw))
		require.NoError(t, err)
		assert.Equal(t, helloZ85, got)
	})

	t.Run("data url to data url", func(t *testing.T) {
		got, err := Base64ToZ85WithOptions("data:image/jpeg;base64,"+helloBase64, NewOptions(DataURL, DataURL))
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;z85,"+helloZ85, got)
	})

	t.Run("data url to raw", func(t *testing.T) {
		got, err := Base64ToZ85WithOptions("data:image/jpeg;base64,"+helloBase64, NewOptions(DataURL, Raw))
		require.NoError(t, err)
		assert.Equal(t, helloZ85, got)
	})

	t.Run("raw to data url fails", func(t *testing.T) {
		_, err := Base64ToZ85WithOptions(helloBase64, NewOptions(Raw, DataURL))
		assert.ErrorIs(t, err, ErrUnsupportedDirection)
	})
}

func TestDataURLRoundTripPreservesMime(t *testing.T) {
	mimes := []string{
		"application/json",
		"text/html",
		"video/mp4",
		"audio/mpeg",
		"application/octet-stream",
	}

	for _, mime := range mimes {
		input := fmt.Sprintf("data:%s;base64,%s", mime, helloBase64)

		z, err := Base64ToZ85WithOptions(input, NewOptions(DataURL, DataURL))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("data:%s;z85,", mime)+helloZ85, z)

		back, err := Z85ToBase64WithOptions(z, NewOptions(DataURL, DataURL))
		require.NoError(t, err)
		assert.Equal(t, input, back)
	}
}

func TestDataURLErrors(t *testing.T) {
	t.Run("missing prefix", func(t *testing.T) {
		_, err := Z85ToBase64WithOptions("not_a_dataurl", NewOptions(DataURL, DataURL))
		assert.ErrorIs(t, err, ErrMalformedDataURL)

		_, err = Base64ToZ85WithOptions("not_a_dataurl", NewOptions(DataURL, Raw))
		assert.ErrorIs(t, err, ErrMalformedDataURL)
	})

	t.Run("marker mismatch", func(t *testing.T) {
		_, err := Z85ToBase64WithOptions("data:image/png;base64,"+helloBase64, NewOptions(DataURL, DataURL))
		assert.ErrorIs(t, err, ErrMarkerMismatch)

		_, err = Base64ToZ85WithOptions("data:image/png;z85,"+helloZ85, NewOptions(DataURL, Raw))
		assert.ErrorIs(t, err, ErrMarkerMismatch)
	})

	t.Run("missing marker", func(t *testing.T) {
		_, err := Z85ToBase64WithOptions("data:image/png,plain", NewOptions(DataURL, DataURL))
		assert.ErrorIs(t, err, ErrMalformedDataURL)
		assert.NotErrorIs(t, err, ErrMarkerMismatch)
	})
}

func TestRawDecodeErrorsPropagate(t *testing.T) {
	_, err := Z85ToBase64("no delimiter here")
	assert.ErrorIs(t, err, encoding.ErrMalformedPayload)

	_, err = Z85ToBase64("nm=QNzY&b1A+]m^:nope")
	assert.ErrorIs(t, err, encoding.ErrInvalidPadding)

	_, err = Base64ToZ85("not valid base64!")
	assert.Error(t, err)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "raw", Raw.String())
	assert.Equal(t, "data-url", DataURL.String())

	k, err := ParseKind("raw")
	require.NoError(t, err)
	assert.Equal(t, Raw, k)

	k, err = ParseKind("data-url")
	require.NoError(t, err)
	assert.Equal(t, DataURL, k)

	_, err = ParseKind("bare")
	assert.Error(t, err)
}
