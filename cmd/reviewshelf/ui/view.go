package ui

import (
	"context"
	"strings"

	"reviewshelf/pkg/model"
)

const emptyStateText = "No reviews yet. Fetch a book and add your first review."

// View implements tea.Model.
func (m Model) View() string {
	ctx := context.Background()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Book Review Shelf"))
	b.WriteString("\n\n")

	b.WriteString(m.label(focusISBN, "ISBN"))
	b.WriteString("\n")
	b.WriteString(m.isbn.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(focusRating, "Rating"))
	b.WriteString("  ")
	b.WriteString(ratingStars(m.rating))
	b.WriteString("\n\n")

	b.WriteString(m.label(focusReview, "Review"))
	b.WriteString("\n")
	b.WriteString(m.reviewText.View())
	b.WriteString("\n\n")

	if m.fetching {
		b.WriteString(m.spinner.View())
		b.WriteString(" Fetching book information, please wait...")
		b.WriteString("\n\n")
	} else if book, err := m.ctrl.CurrentBook(ctx); err == nil {
		b.WriteString(m.bookPanel(book))
		b.WriteString("\n\n")
	}

	if !m.notice.None() {
		b.WriteString(m.styles.Notice(m.notice.Level).Render(m.notice.Text))
		b.WriteString("\n\n")
	}

	if m.ctrl.HasReviews(ctx) {
		b.WriteString(m.label(focusTable, "Your Reviews"))
		b.WriteString("\n")
		b.WriteString(m.reviews.View())
	} else {
		b.WriteString(m.styles.Muted.Render(emptyStateText))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Help.Render(
		"enter fetch • ctrl+s submit • ctrl+l clear • tab next field • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) label(area focusArea, text string) string {
	if m.focus == area {
		return m.styles.FocusLabel.Render("> " + text)
	}
	return m.styles.Label.Render("  " + text)
}

func (m Model) bookPanel(book *model.Book) string {
	var p strings.Builder
	p.WriteString(m.styles.PanelTitle.Render(book.Title))
	p.WriteString("\n")
	p.WriteString("by " + book.Author)
	p.WriteString("\n\n")
	p.WriteString(book.Description)
	if book.Publisher != "" {
		p.WriteString("\n\n")
		p.WriteString(m.styles.Muted.Render(book.Publisher + ", " + book.PublishedAt))
	}
	return m.styles.Panel.Render(p.String())
}

func ratingStars(rating model.RatingValue) string {
	filled := int(rating)
	if filled < int(model.MinRating) {
		filled = int(model.MinRating)
	}
	if filled > int(model.MaxRating) {
		filled = int(model.MaxRating)
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", int(model.MaxRating)-filled)
}
