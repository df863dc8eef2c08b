package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

// NewCatalogServer starts a fake catalog service answering every
// volume search with the given status code and body. Callers own
// the returned server and must Close it.
func NewCatalogServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

// VolumesBody renders a catalog volume search body with a single
// volume. Empty fields are omitted so per-field defaulting can be
// exercised.
func VolumesBody(title, authors, description string) string {
	info := ""
	if title != "" {
		info += fmt.Sprintf("%q: %q,", "title", title)
	}
	if authors != "" {
		info += fmt.Sprintf("%q: [%q],", "authors", authors)
	}
	if description != "" {
		info += fmt.Sprintf("%q: %q,", "description", description)
	}
	info += `"publisher": "Test Press", "publishedDate": "2008", "pageCount": 431`
	return fmt.Sprintf(`{"totalItems": 1, "items": [{"volumeInfo": {%s}}]}`, info)
}

// EmptyVolumesBody renders a catalog volume search body with no results.
func EmptyVolumesBody() string {
	return `{"totalItems": 0}`
}
