package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvide/z85kit/convert"
)

const (
	helloZ85    = "nm=QNzY&b1A+]m^:1"
	helloBase64 = "SGVsbG8gV29ybGQ="
)

func newTestRouter() *Router {
	r := NewRouter(&Config{})
	Mount(r)
	return r
}

func do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, bytes.NewReader(body))
	newTestRouter().ServeHTTP(w, r)
	return w
}

func doConvert(t *testing.T, path string, req ConvertRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)
	return do(t, MethodPost, path, body)
}

func TestConvertZ85ToBase64(t *testing.T) {
	w := doConvert(t, "/api/convert/z85-to-base64", ConvertRequest{Data: helloZ85})
	require.Equal(t, StatusOK, w.Code)

	var res ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, helloBase64, res.Data)
}

func TestConvertBase64ToZ85DataURL(t *testing.T) {
	w := doConvert(t, "/api/convert/base64-to-z85", ConvertRequest{
		Data:   "data:image/png;base64," + helloBase64,
		Input:  "data-url",
		Output: "data-url",
	})
	require.Equal(t, StatusOK, w.Code)

	var res ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "data:image/png;z85,"+helloZ85, res.Data)
}

func TestConvertRejectsUnknownKind(t *testing.T) {
	w := doConvert(t, "/api/convert/z85-to-base64", ConvertRequest{
		Data:  helloZ85,
		Input: "bare",
	})
	require.Equal(t, StatusBadRequest, w.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "bare")
}

func TestConvertRejectsUnsupportedDirection(t *testing.T) {
	w := doConvert(t, "/api/convert/z85-to-base64", ConvertRequest{
		Data:   helloZ85,
		Output: "data-url",
	})
	require.Equal(t, StatusUnprocessableEntity, w.Code)
}

func TestConvertRejectsMalformedPayload(t *testing.T) {
	w := doConvert(t, "/api/convert/z85-to-base64", ConvertRequest{Data: "no delimiter"})
	require.Equal(t, StatusUnprocessableEntity, w.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Error)
}

func TestConvertRejectsBadJson(t *testing.T) {
	w := do(t, MethodPost, "/api/convert/base64-to-z85", []byte("{"))
	require.Equal(t, StatusBadRequest, w.Code)
}

func TestEncodeDecodeEndpoints(t *testing.T) {
	data := []byte("Hello, World!")

	w := do(t, MethodPost, "/api/encode", data)
	require.Equal(t, StatusOK, w.Code)
	text := w.Body.String()
	assert.Contains(t, text, ":")

	w = do(t, MethodPost, "/api/decode", []byte(text))
	require.Equal(t, StatusOK, w.Code)
	assert.Equal(t, data, w.Body.Bytes())
	assert.Equal(t, ContentTypeOctetStream, w.Header().Get(HeaderContentType))
}

func TestDecodeEndpointKnownVector(t *testing.T) {
	w := do(t, MethodPost, "/api/decode", []byte(helloZ85))
	require.Equal(t, StatusOK, w.Code)
	assert.Equal(t, []byte("Hello World"), w.Body.Bytes())
}

func TestDecodeEndpointRejectsGarbage(t *testing.T) {
	w := do(t, MethodPost, "/api/decode", []byte("no delimiter"))
	require.Equal(t, StatusUnprocessableEntity, w.Code)
}

func TestEfficiencyEndpoint(t *testing.T) {
	w := do(t, MethodGet, "/api/efficiency?size=1000", nil)
	require.Equal(t, StatusOK, w.Code)

	var res convert.EfficiencyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1336, res.Base64Size)
	assert.Equal(t, 1250, res.Z85Size)
}

func TestEfficiencyEndpointRejectsBadSize(t *testing.T) {
	for _, q := range []string{"", "?size=abc", "?size=-1"} {
		w := do(t, MethodGet, "/api/efficiency"+q, nil)
		assert.Equal(t, StatusBadRequest, w.Code, "query %q", q)
	}
}

func TestIndex(t *testing.T) {
	w := do(t, MethodGet, "/", nil)
	require.Equal(t, StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "z85kit"))
	assert.Contains(t, w.Body.String(), "/api/convert/z85-to-base64")
}
