package model

import (
	"fmt"
	"time"
)

// RatingValue defines the value of a review rating.
type RatingValue int

// Rating bounds accepted for a review.
const (
	MinRating = RatingValue(1)
	MaxRating = RatingValue(5)

	// DefaultRating is the value the form falls back to when
	// the rating was never touched.
	DefaultRating = MaxRating
)

// Review defines a single user-submitted review. Reviews are
// immutable after creation and are never edited or deleted.
type Review struct {
	ISBN       string      `json:"isbn" validate:"required"`
	Title      string      `json:"title" validate:"required"`
	Author     string      `json:"author" validate:"required"`
	Rating     RatingValue `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string      `json:"reviewText" validate:"required"`
	Date       time.Time   `json:"date" validate:"required"`
}

func (r *Review) String() string {
	return fmt.Sprintf("Review{ISBN=%s, Title=%s, Rating=%d, Date=%s}", r.ISBN, r.Title, r.Rating, r.Date.Format(time.DateOnly))
}
