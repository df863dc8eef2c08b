package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"reviewshelf/internal/gateway"
	"reviewshelf/internal/repository"
	"reviewshelf/pkg/logging"
	"reviewshelf/pkg/metrics"
	"reviewshelf/pkg/model"

	"github.com/go-playground/validator/v10"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// Notice texts surfaced by form actions.
const (
	noticeMissingISBN     = "Please enter an ISBN"
	noticeBookLoaded      = "Book information loaded successfully!"
	noticeBookNotFound    = "No book found with this ISBN"
	noticeMissingFields   = "Please fetch book information and fill in your review"
	noticeReviewSubmitted = "Review submitted successfully!"
	noticeRatingBounds    = "Rating must be between 1 and 5"
)

type catalogGateway interface {
	Lookup(ctx context.Context, identifier string) (*model.Book, error)
}

type sessionRepository interface {
	CurrentBook(ctx context.Context) (*model.Book, error)
	SetCurrentBook(ctx context.Context, book *model.Book) error
	AppendReview(ctx context.Context, review model.Review) error
	Reviews(ctx context.Context) ([]model.Review, error)
}

// Controller defines the review form controller. It mediates the
// three user actions against the session state and turns every
// outcome into a notice for the view.
type Controller struct {
	catalog  catalogGateway
	session  sessionRepository
	validate *validator.Validate
	logger   *zap.Logger

	fetchMetrics  *metrics.ActionMetrics
	submitMetrics *metrics.ActionMetrics
	clearMetrics  *metrics.ActionMetrics
}

// New creates a review form controller.
func New(catalog catalogGateway, session sessionRepository, logger *zap.Logger, scope tally.Scope) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{
		catalog:       catalog,
		session:       session,
		validate:      validator.New(),
		logger:        logger,
		fetchMetrics:  metrics.NewActionMetrics(scope, "fetch"),
		submitMetrics: metrics.NewActionMetrics(scope, "submit"),
		clearMetrics:  metrics.NewActionMetrics(scope, "clear"),
	}
}

// Fetch looks up an identifier in the catalog and loads the result
// into the session. Every outcome leaves the session in a defined
// state: the looked-up book on success, no book otherwise.
func (c *Controller) Fetch(ctx context.Context, identifier string) model.Notice {
	c.fetchMetrics.Calls.Inc(1)
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		c.fetchMetrics.InvalidArgumentErrors.Inc(1)
		return model.Notice{Level: model.NoticeWarning, Text: noticeMissingISBN}
	}

	book, err := c.catalog.Lookup(ctx, identifier)
	if err != nil {
		if setErr := c.session.SetCurrentBook(ctx, nil); setErr != nil {
			c.logger.Warn("Failed to clear the current book", zap.Error(setErr))
		}
		if errors.Is(err, gateway.ErrNotFound) {
			c.fetchMetrics.NotFoundErrors.Inc(1)
			return model.Notice{Level: model.NoticeError, Text: noticeBookNotFound}
		}
		c.fetchMetrics.InternalErrors.Inc(1)
		c.logger.Warn("Catalog lookup failed", zap.String(logging.FieldISBN, identifier), zap.Error(err))
		return model.Notice{Level: model.NoticeError, Text: noticeText(err)}
	}

	if err := c.session.SetCurrentBook(ctx, book); err != nil {
		c.fetchMetrics.InternalErrors.Inc(1)
		c.logger.Warn("Failed to store the current book", zap.Error(err))
		return model.Notice{Level: model.NoticeError, Text: noticeText(err)}
	}
	c.fetchMetrics.Successes.Inc(1)
	return model.Notice{Level: model.NoticeInfo, Text: noticeBookLoaded}
}

// Submit builds a review from the current book plus the entered
// rating and text, and appends it to the session log. On success the
// current book is cleared so the next review starts from a fresh fetch.
func (c *Controller) Submit(ctx context.Context, identifier string, rating model.RatingValue, reviewText string) model.Notice {
	c.submitMetrics.Calls.Inc(1)
	identifier = strings.TrimSpace(identifier)
	reviewText = strings.TrimSpace(reviewText)

	book, err := c.session.CurrentBook(ctx)
	if err != nil && !errors.Is(err, repository.ErrNoBook) {
		c.submitMetrics.InternalErrors.Inc(1)
		c.logger.Warn("Failed to read the current book", zap.Error(err))
		return model.Notice{Level: model.NoticeError, Text: noticeText(err)}
	}
	if identifier == "" || book == nil || reviewText == "" {
		c.submitMetrics.InvalidArgumentErrors.Inc(1)
		return model.Notice{Level: model.NoticeWarning, Text: noticeMissingFields}
	}

	review := model.Review{
		ISBN:       identifier,
		Title:      book.Title,
		Author:     book.Author,
		Rating:     rating,
		ReviewText: reviewText,
		Date:       time.Now(),
	}
	if err := c.validate.Struct(&review); err != nil {
		c.submitMetrics.InvalidArgumentErrors.Inc(1)
		return model.Notice{Level: model.NoticeWarning, Text: noticeRatingBounds}
	}
	if err := c.session.AppendReview(ctx, review); err != nil {
		c.submitMetrics.InternalErrors.Inc(1)
		c.logger.Warn("Failed to append a review", zap.Error(err))
		return model.Notice{Level: model.NoticeError, Text: noticeText(err)}
	}
	if err := c.session.SetCurrentBook(ctx, nil); err != nil {
		c.logger.Warn("Failed to clear the current book", zap.Error(err))
	}
	c.submitMetrics.Successes.Inc(1)
	c.logger.Info("Review submitted", zap.Stringer("review", &review))
	return model.Notice{Level: model.NoticeInfo, Text: noticeReviewSubmitted}
}

// Clear unconditionally clears the current book. Clearing an already
// empty session is a no-op.
func (c *Controller) Clear(ctx context.Context) error {
	c.clearMetrics.Calls.Inc(1)
	if err := c.session.SetCurrentBook(ctx, nil); err != nil {
		c.clearMetrics.InternalErrors.Inc(1)
		return err
	}
	c.clearMetrics.Successes.Inc(1)
	return nil
}

// CurrentBook returns the currently loaded book, or
// repository.ErrNoBook when none is loaded.
func (c *Controller) CurrentBook(ctx context.Context) (*model.Book, error) {
	return c.session.CurrentBook(ctx)
}

// Reviews returns all submitted reviews in submission order.
func (c *Controller) Reviews(ctx context.Context) ([]model.Review, error) {
	return c.session.Reviews(ctx)
}

// BookLoaded reports whether a book is currently loaded.
func (c *Controller) BookLoaded(ctx context.Context) bool {
	_, err := c.session.CurrentBook(ctx)
	return err == nil
}

// HasReviews reports whether at least one review was submitted.
func (c *Controller) HasReviews(ctx context.Context) bool {
	reviews, err := c.session.Reviews(ctx)
	return err == nil && len(reviews) > 0
}

// noticeText renders a failure as the text shown to the user.
// Sentinel errors surface verbatim, anything else with its cause.
func noticeText(err error) string {
	if errors.Is(err, gateway.ErrRequestFailed) {
		return gateway.ErrRequestFailed.Error()
	}
	return "Error: " + err.Error()
}
