package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"reviewshelf/configs"
	"reviewshelf/internal/gateway"
	"reviewshelf/pkg/logging"
	"reviewshelf/pkg/model"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "catalog-gateway-http"

// Field defaults applied when the catalog record omits a value.
const (
	defaultTitle       = "Unknown"
	defaultAuthor      = "Unknown"
	defaultDescription = "No description available"
)

// Gateway defines an HTTP gateway for a book catalog service.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a new HTTP gateway for a book catalog service.
func New(cfg configs.CatalogConfig, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "catalog-gateway"),
		zap.String(logging.FieldType, "http"),
	)
	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger:  logger,
	}
}

// volumesResponse matches the catalog volume search body.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo volumeInfo `json:"volumeInfo"`
	} `json:"items"`
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     int      `json:"pageCount"`
}

// Lookup gets book metadata by an ISBN. It returns gateway.ErrNotFound
// when the catalog has no matching volume and gateway.ErrRequestFailed
// on a non-2xx response. One outbound call per invocation, no retries.
func (g *Gateway) Lookup(ctx context.Context, identifier string) (*model.Book, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Lookup")
	defer span.End()

	url := g.baseURL + "/volumes"
	g.logger.Debug("Calling catalog service",
		zap.String("url", url),
		zap.String(logging.FieldISBN, identifier),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	values := req.URL.Query()
	values.Add("q", "isbn:"+identifier)
	req.URL.RawQuery = values.Encode()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		g.logger.Warn("Catalog responded with an error status",
			zap.Int("status", resp.StatusCode),
			zap.String(logging.FieldISBN, identifier),
		)
		return nil, gateway.ErrRequestFailed
	}
	var v volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if v.TotalItems == 0 || len(v.Items) == 0 {
		return nil, gateway.ErrNotFound
	}
	return bookFromVolume(v.Items[0].VolumeInfo), nil
}

// bookFromVolume normalizes a catalog volume, defaulting each
// missing field individually.
func bookFromVolume(info volumeInfo) *model.Book {
	return &model.Book{
		Title:       orDefault(info.Title, defaultTitle),
		Author:      orDefault(strings.Join(info.Authors, ", "), defaultAuthor),
		Description: orDefault(info.Description, defaultDescription),
		Publisher:   info.Publisher,
		PublishedAt: info.PublishedDate,
		PageCount:   info.PageCount,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
