package http

import (
	"github.com/corvide/z85kit/template"
)

type indexEndpoint struct {
	Method string
	Path   string
	Usage  string
}

var indexEndpoints = []indexEndpoint{
	{MethodPost, "/api/convert/z85-to-base64", `JSON {"data", "input", "output"}, input/output one of "raw", "data-url"`},
	{MethodPost, "/api/convert/base64-to-z85", `JSON {"data", "input", "output"}, input/output one of "raw", "data-url"`},
	{MethodPost, "/api/encode", "raw bytes in, <z85-text>:<pad> out"},
	{MethodPost, "/api/decode", "<z85-text>:<pad> in, raw bytes out"},
	{MethodGet, "/api/efficiency?size=N", "projected base64 and Z85 encoded sizes for N bytes"},
}

var indexTemplate = template.Must(template.Parse("index", `<!doctype html>
<html>
  <head><title>{{ .Name }}</title></head>
  <body>
    <h1>{{ .Name }}</h1>
    <p>Z85 and base64 payload conversion.</p>
    <table>
      <tr><th>method</th><th>path</th><th>usage</th></tr>
      {{- range .Endpoints }}
      <tr><td>{{ .Method | upper }}</td><td><code>{{ .Path }}</code></td><td>{{ .Usage }}</td></tr>
      {{- end }}
    </table>
  </body>
</html>
`))

func Index(w ResponseWriter, r *Request) {
	w.Header().Set(HeaderContentType, ContentTypeHtml)
	err := indexTemplate.Execute(w, struct {
		Name      string
		Endpoints []indexEndpoint
	}{
		Name:      "z85kit",
		Endpoints: indexEndpoints,
	})
	if err != nil {
		l := RequestLog(r)
		l.Error().Err(err).Msg("failed to render index")
	}
}
