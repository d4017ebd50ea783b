package http

import (
	"encoding/json"
	"io/ioutil"
	"strconv"

	"github.com/corvide/z85kit/convert"
	"github.com/corvide/z85kit/errors"
)

type (
	ConvertRequest struct {
		Data   string `json:"data"`
		Input  string `json:"input,omitempty"`
		Output string `json:"output,omitempty"`
	}
	ConvertResponse struct {
		Data string `json:"data"`
	}
	ErrorResponse struct {
		Error string `json:"error"`
	}
)

var errParameterSize = errors.New("size query parameter must be a non-negative integer")

func writeJson(w ResponseWriter, code int, v interface{}) {
	w.Header().Set(HeaderContentType, ContentTypeJson)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w ResponseWriter, code int, err error) {
	writeJson(w, code, ErrorResponse{Error: err.Error()})
}

func (req *ConvertRequest) options() (convert.Options, error) {
	var (
		opts = convert.Options{}
		err  error
	)

	if req.Input != "" {
		opts.Input, err = convert.ParseKind(req.Input)
		if err != nil {
			return opts, err
		}
	}
	if req.Output != "" {
		opts.Output, err = convert.ParseKind(req.Output)
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// Convert adapts one conversion direction into a JSON POST handler.
func Convert(fn func(string, convert.Options) (string, error)) HandlerFunc {
	return func(w ResponseWriter, r *Request) {
		var req ConvertRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			writeError(w, StatusBadRequest, err)
			return
		}

		opts, err := req.options()
		if err != nil {
			writeError(w, StatusBadRequest, err)
			return
		}

		data, err := fn(req.Data, opts)
		if err != nil {
			writeError(w, StatusUnprocessableEntity, err)
			return
		}

		writeJson(w, StatusOK, ConvertResponse{Data: data})
	}
}

// EncodeZ85 reads the request body as raw bytes and responds with the
// "<z85-text>:<pad>" form.
func EncodeZ85(w ResponseWriter, r *Request) {
	buf, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, StatusBadRequest, err)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeText)
	_, _ = w.Write([]byte(convert.EncodeZ85(buf)))
}

// DecodeZ85 reads a "<z85-text>:<pad>" body and responds with the
// decoded bytes.
func DecodeZ85(w ResponseWriter, r *Request) {
	text, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, StatusBadRequest, err)
		return
	}

	buf, err := convert.DecodeZ85(string(text))
	if err != nil {
		writeError(w, StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeOctetStream)
	_, _ = w.Write(buf)
}

// Efficiency responds with the projected base64 and Z85 encoded sizes
// for the number of bytes given in the size query parameter.
func Efficiency(w ResponseWriter, r *Request) {
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size < 0 {
		writeError(w, StatusBadRequest, errParameterSize)
		return
	}

	writeJson(w, StatusOK, convert.Efficiency(size))
}

//

// Mount attaches the conversion API to a router.
func Mount(r *Router) {
	r.Methods(MethodPost).Path("/api/convert/z85-to-base64").
		Handler(Convert(convert.Z85ToBase64WithOptions))
	r.Methods(MethodPost).Path("/api/convert/base64-to-z85").
		Handler(Convert(convert.Base64ToZ85WithOptions))
	r.Methods(MethodPost).Path("/api/encode").HandlerFunc(EncodeZ85)
	r.Methods(MethodPost).Path("/api/decode").HandlerFunc(DecodeZ85)
	r.Methods(MethodGet).Path("/api/efficiency").HandlerFunc(Efficiency)
	r.Methods(MethodGet).Path("/").HandlerFunc(Index)
}
