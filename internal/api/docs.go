package api

import (
	_ "embed"
	"net/http"
)

// The OpenAPI document is a static artifact; it is embedded so the binary
// stays self-contained.
//
//go:embed openapi.json
var openapiDocument []byte

//go:embed docs.html
var docsPage []byte

// DocsJSON serves the raw OpenAPI document at /docs.json.
func DocsJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiDocument)
}

// Docs serves the Swagger UI page at /docs.
func Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}
