package memory

import (
	"context"
	"sync"

	"reviewshelf/internal/repository"
	"reviewshelf/pkg/logging"
	"reviewshelf/pkg/model"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const tracerID = "session-repository-memory"

// Session defines the in-memory state owned by a single user session:
// the currently loaded book and the append-only review log. One
// Session value is created per active session, never shared.
type Session struct {
	sync.RWMutex
	currentBook *model.Book
	reviews     []model.Review
	logger      *zap.Logger
}

// New creates a new session repository.
func New(logger *zap.Logger) *Session {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Session{logger: logger}
}

// CurrentBook retrieves the currently loaded book, or
// repository.ErrNoBook when none is loaded.
func (s *Session) CurrentBook(ctx context.Context) (*model.Book, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Session/CurrentBook")
	defer span.End()
	s.RLock()
	defer s.RUnlock()
	if s.currentBook == nil {
		return nil, repository.ErrNoBook
	}
	return s.currentBook, nil
}

// SetCurrentBook replaces the currently loaded book wholesale.
// A nil book clears it.
func (s *Session) SetCurrentBook(ctx context.Context, book *model.Book) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Session/SetCurrentBook")
	defer span.End()
	s.Lock()
	defer s.Unlock()
	s.currentBook = book
	return nil
}

// AppendReview adds a review to the end of the session log.
// Existing entries are never mutated, reordered or removed.
func (s *Session) AppendReview(ctx context.Context, review model.Review) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Session/AppendReview")
	defer span.End()
	s.Lock()
	defer s.Unlock()
	s.reviews = append(s.reviews, review)
	s.logger.Debug("Appended a review", zap.Int("total", len(s.reviews)))
	return nil
}

// Reviews retrieves a copy of the review log in submission order.
func (s *Session) Reviews(ctx context.Context) ([]model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Session/Reviews")
	defer span.End()
	s.RLock()
	defer s.RUnlock()
	out := make([]model.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}
