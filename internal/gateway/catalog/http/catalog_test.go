package http

import (
	"context"
	"net/http"
	"testing"

	"reviewshelf/configs"
	"reviewshelf/internal/gateway"
	"reviewshelf/pkg/model"
	"reviewshelf/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newGateway(baseURL string) *Gateway {
	return New(configs.CatalogConfig{BaseURL: baseURL, TimeoutSeconds: 5}, zap.NewNop())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantRes *model.Book
		wantErr error
	}{
		{
			name:   "full volume",
			status: http.StatusOK,
			body: `{"totalItems": 1, "items": [{"volumeInfo": {
				"title": "Clean Code",
				"authors": ["Robert C. Martin"],
				"description": "A handbook of agile software craftsmanship.",
				"publisher": "Prentice Hall",
				"publishedDate": "2008",
				"pageCount": 431
			}}]}`,
			wantRes: &model.Book{
				Title:       "Clean Code",
				Author:      "Robert C. Martin",
				Description: "A handbook of agile software craftsmanship.",
				Publisher:   "Prentice Hall",
				PublishedAt: "2008",
				PageCount:   431,
			},
		},
		{
			name:   "missing fields get defaulted individually",
			status: http.StatusOK,
			body:   `{"totalItems": 1, "items": [{"volumeInfo": {}}]}`,
			wantRes: &model.Book{
				Title:       "Unknown",
				Author:      "Unknown",
				Description: "No description available",
			},
		},
		{
			name:   "authors joined with a comma",
			status: http.StatusOK,
			body: `{"totalItems": 1, "items": [{"volumeInfo": {
				"title": "The Go Programming Language",
				"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"]
			}}]}`,
			wantRes: &model.Book{
				Title:       "The Go Programming Language",
				Author:      "Alan A. A. Donovan, Brian W. Kernighan",
				Description: "No description available",
			},
		},
		{
			name:    "no results",
			status:  http.StatusOK,
			body:    `{"totalItems": 0}`,
			wantErr: gateway.ErrNotFound,
		},
		{
			name:    "positive count but empty item list",
			status:  http.StatusOK,
			body:    `{"totalItems": 3, "items": []}`,
			wantErr: gateway.ErrNotFound,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: gateway.ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testutil.NewCatalogServer(tt.status, tt.body)
			defer srv.Close()
			res, err := newGateway(srv.URL).Lookup(context.Background(), "9780132350884")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr, tt.name)
				assert.Nil(t, res, tt.name)
				return
			}
			assert.NoError(t, err, tt.name)
			assert.Equal(t, tt.wantRes, res, tt.name)
		})
	}
}

func TestLookupMalformedBody(t *testing.T) {
	srv := testutil.NewCatalogServer(http.StatusOK, `{"totalItems": `)
	defer srv.Close()
	res, err := newGateway(srv.URL).Lookup(context.Background(), "9780132350884")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, gateway.ErrNotFound)
	assert.NotErrorIs(t, err, gateway.ErrRequestFailed)
	assert.Nil(t, res)
}

func TestLookupNetworkFailure(t *testing.T) {
	srv := testutil.NewCatalogServer(http.StatusOK, `{}`)
	srv.Close()
	res, err := newGateway(srv.URL).Lookup(context.Background(), "9780132350884")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, gateway.ErrRequestFailed)
	assert.Nil(t, res)
}

func TestLookupSendsISBNQuery(t *testing.T) {
	var gotQuery string
	srv := testutil.NewCatalogServer(http.StatusOK, testutil.VolumesBody("Clean Code", "Robert C. Martin", ""))
	defer srv.Close()
	// Re-point the handler to capture the query string.
	srv.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("q")
		_, _ = w.Write([]byte(testutil.VolumesBody("Clean Code", "Robert C. Martin", "")))
	})
	_, err := newGateway(srv.URL).Lookup(context.Background(), "9780132350884")
	assert.NoError(t, err)
	assert.Equal(t, "isbn:9780132350884", gotQuery)
}
