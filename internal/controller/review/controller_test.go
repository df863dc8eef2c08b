package review

import (
	"context"
	"errors"
	"testing"
	"time"

	gen "reviewshelf/gen/mock/review/controller"
	"reviewshelf/internal/gateway"
	"reviewshelf/internal/repository"
	"reviewshelf/pkg/model"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v6"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestController(t *testing.T) (*Controller, *gen.MockcatalogGateway, *gen.MocksessionRepository) {
	ctrl := gomock.NewController(t)
	catalogMock := gen.NewMockcatalogGateway(ctrl)
	sessionMock := gen.NewMocksessionRepository(ctrl)
	return New(catalogMock, sessionMock, zap.NewNop(), tally.NoopScope), catalogMock, sessionMock
}

func TestFetch(t *testing.T) {
	book := &model.Book{Title: "Clean Code", Author: "Robert C. Martin", Description: "A handbook."}

	tests := []struct {
		name       string
		identifier string
		lookupRes  *model.Book
		lookupErr  error
		noLookup   bool
		setBook    *model.Book
		noSet      bool
		want       model.Notice
	}{
		{
			name:       "empty identifier short-circuits",
			identifier: "   ",
			noLookup:   true,
			noSet:      true,
			want:       model.Notice{Level: model.NoticeWarning, Text: "Please enter an ISBN"},
		},
		{
			name:       "success loads the book",
			identifier: "9780132350884",
			lookupRes:  book,
			setBook:    book,
			want:       model.Notice{Level: model.NoticeInfo, Text: "Book information loaded successfully!"},
		},
		{
			name:       "not found clears the book",
			identifier: "0000000000",
			lookupErr:  gateway.ErrNotFound,
			setBook:    nil,
			want:       model.Notice{Level: model.NoticeError, Text: "No book found with this ISBN"},
		},
		{
			name:       "request failed clears the book",
			identifier: "9780132350884",
			lookupErr:  gateway.ErrRequestFailed,
			setBook:    nil,
			want:       model.Notice{Level: model.NoticeError, Text: "API request failed"},
		},
		{
			name:       "transport error surfaces the cause",
			identifier: "9780132350884",
			lookupErr:  errors.New("connection refused"),
			setBook:    nil,
			want:       model.Notice{Level: model.NoticeError, Text: "Error: connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, catalogMock, sessionMock := newTestController(t)
			ctx := context.Background()
			if !tt.noLookup {
				catalogMock.EXPECT().Lookup(ctx, tt.identifier).Return(tt.lookupRes, tt.lookupErr)
			}
			if !tt.noSet {
				sessionMock.EXPECT().SetCurrentBook(ctx, tt.setBook).Return(nil)
			}
			got := c.Fetch(ctx, tt.identifier)
			assert.Equal(t, tt.want, got, tt.name)
		})
	}
}

func TestFetchTrimsIdentifier(t *testing.T) {
	c, catalogMock, sessionMock := newTestController(t)
	ctx := context.Background()
	catalogMock.EXPECT().Lookup(ctx, "9780132350884").Return(&model.Book{Title: "Clean Code"}, nil)
	sessionMock.EXPECT().SetCurrentBook(ctx, gomock.Any()).Return(nil)
	got := c.Fetch(ctx, "  9780132350884  ")
	assert.Equal(t, model.NoticeInfo, got.Level)
}

func TestSubmitPreconditions(t *testing.T) {
	book := &model.Book{Title: "Clean Code", Author: "Robert C. Martin"}
	missing := model.Notice{Level: model.NoticeWarning, Text: "Please fetch book information and fill in your review"}

	tests := []struct {
		name        string
		identifier  string
		rating      model.RatingValue
		text        string
		currentBook *model.Book
		currentErr  error
		want        model.Notice
	}{
		{
			name:       "no book loaded never appends",
			identifier: "9780132350884",
			rating:     4,
			text:       "Great read",
			currentErr: repository.ErrNoBook,
			want:       missing,
		},
		{
			name:        "empty identifier",
			identifier:  "",
			rating:      4,
			text:        "Great read",
			currentBook: book,
			want:        missing,
		},
		{
			name:        "empty review text",
			identifier:  "9780132350884",
			rating:      4,
			text:        "   ",
			currentBook: book,
			want:        missing,
		},
		{
			name:        "rating below bounds",
			identifier:  "9780132350884",
			rating:      0,
			text:        "Great read",
			currentBook: book,
			want:        model.Notice{Level: model.NoticeWarning, Text: "Rating must be between 1 and 5"},
		},
		{
			name:        "rating above bounds",
			identifier:  "9780132350884",
			rating:      6,
			text:        "Great read",
			currentBook: book,
			want:        model.Notice{Level: model.NoticeWarning, Text: "Rating must be between 1 and 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, sessionMock := newTestController(t)
			ctx := context.Background()
			sessionMock.EXPECT().CurrentBook(ctx).Return(tt.currentBook, tt.currentErr)
			got := c.Submit(ctx, tt.identifier, tt.rating, tt.text)
			assert.Equal(t, tt.want, got, tt.name)
		})
	}
}

func TestSubmitAppendsAndResets(t *testing.T) {
	c, _, sessionMock := newTestController(t)
	ctx := context.Background()
	book := &model.Book{Title: "Clean Code", Author: "Robert C. Martin"}

	var appended model.Review
	sessionMock.EXPECT().CurrentBook(ctx).Return(book, nil)
	sessionMock.EXPECT().AppendReview(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r model.Review) error {
			appended = r
			return nil
		})
	sessionMock.EXPECT().SetCurrentBook(ctx, nil).Return(nil)

	got := c.Submit(ctx, "9780132350884", 4, "Great read")
	assert.Equal(t, model.Notice{Level: model.NoticeInfo, Text: "Review submitted successfully!"}, got)

	want := model.Review{
		ISBN:       "9780132350884",
		Title:      "Clean Code",
		Author:     "Robert C. Martin",
		Rating:     4,
		ReviewText: "Great read",
	}
	diff := cmp.Diff(want, appended, cmpopts.IgnoreFields(model.Review{}, "Date"))
	assert.Equal(t, "", diff)
	assert.Equal(t, time.Now().Format(time.DateOnly), appended.Date.Format(time.DateOnly))
}

func TestClear(t *testing.T) {
	c, _, sessionMock := newTestController(t)
	ctx := context.Background()
	// Clearing twice in a row stays a no-op.
	sessionMock.EXPECT().SetCurrentBook(ctx, nil).Return(nil).Times(2)
	assert.NoError(t, c.Clear(ctx))
	assert.NoError(t, c.Clear(ctx))
}

func TestDerivedSignals(t *testing.T) {
	c, _, sessionMock := newTestController(t)
	ctx := context.Background()

	sessionMock.EXPECT().CurrentBook(ctx).Return(nil, repository.ErrNoBook)
	assert.False(t, c.BookLoaded(ctx))
	sessionMock.EXPECT().CurrentBook(ctx).Return(&model.Book{Title: "Clean Code"}, nil)
	assert.True(t, c.BookLoaded(ctx))

	sessionMock.EXPECT().Reviews(ctx).Return(nil, nil)
	assert.False(t, c.HasReviews(ctx))
	sessionMock.EXPECT().Reviews(ctx).Return([]model.Review{{ISBN: "1"}}, nil)
	assert.True(t, c.HasReviews(ctx))
}
