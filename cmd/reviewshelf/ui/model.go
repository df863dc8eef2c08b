package ui

import (
	"context"
	"time"

	"reviewshelf/pkg/model"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formController is the slice of the review controller the view needs.
type formController interface {
	Fetch(ctx context.Context, identifier string) model.Notice
	Submit(ctx context.Context, identifier string, rating model.RatingValue, reviewText string) model.Notice
	Clear(ctx context.Context) error
	CurrentBook(ctx context.Context) (*model.Book, error)
	Reviews(ctx context.Context) ([]model.Review, error)
	BookLoaded(ctx context.Context) bool
	HasReviews(ctx context.Context) bool
}

// focusArea determines which form element receives input.
type focusArea int

const (
	focusISBN focusArea = iota
	focusRating
	focusReview
	focusTable
	focusCount
)

// fetchDoneMsg reports the outcome of an asynchronous catalog fetch.
type fetchDoneMsg struct {
	notice model.Notice
}

// Model is the Bubble Tea model for the review form.
type Model struct {
	ctrl   formController
	styles Styles

	isbn       textinput.Model
	rating     model.RatingValue
	reviewText textarea.Model
	reviews    table.Model
	spinner    spinner.Model

	focus    focusArea
	fetching bool
	notice   model.Notice
	width    int
	height   int
}

// New creates the review form model around a form controller.
func New(ctrl formController) Model {
	styles := DefaultStyles()

	isbn := textinput.New()
	isbn.Placeholder = "ISBN, e.g. 9780132350884"
	isbn.CharLimit = 20
	isbn.Width = 32
	isbn.Focus()

	reviewText := textarea.New()
	reviewText.Placeholder = "Write your review..."
	reviewText.SetWidth(64)
	reviewText.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	reviews := table.New(
		table.WithColumns([]table.Column{
			{Title: "ISBN", Width: 14},
			{Title: "Title", Width: 22},
			{Title: "Author", Width: 18},
			{Title: "Rating", Width: 6},
			{Title: "Review", Width: 28},
			{Title: "Date", Width: 10},
		}),
		table.WithHeight(6),
	)

	return Model{
		ctrl:       ctrl,
		styles:     styles,
		isbn:       isbn,
		rating:     model.DefaultRating,
		reviewText: reviewText,
		reviews:    reviews,
		spinner:    sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 6; w > 0 && w < 64 {
			m.reviewText.SetWidth(w)
		}
		return m, nil

	case fetchDoneMsg:
		m.fetching = false
		m.notice = msg.notice
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.cycleFocus(1)
		case "shift+tab":
			return m.cycleFocus(-1)
		case "ctrl+s":
			return m.submit()
		case "ctrl+l":
			return m.clear()
		case "enter":
			if m.focus == focusISBN {
				return m.fetch()
			}
		case "up", "right", "+":
			if m.focus == focusRating {
				if m.rating < model.MaxRating {
					m.rating++
				}
				return m, nil
			}
		case "down", "left", "-":
			if m.focus == focusRating {
				if m.rating > model.MinRating {
					m.rating--
				}
				return m, nil
			}
		}
	}

	// Blurred components ignore key input, so routing to all of them
	// is safe; the table only scrolls while focused.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.isbn, cmd = m.isbn.Update(msg)
	cmds = append(cmds, cmd)
	m.reviewText, cmd = m.reviewText.Update(msg)
	cmds = append(cmds, cmd)
	if m.focus == focusTable {
		m.reviews, cmd = m.reviews.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// fetch starts an asynchronous catalog lookup. A lookup already in
// flight wins; re-triggering is ignored until it reports back.
func (m Model) fetch() (tea.Model, tea.Cmd) {
	if m.fetching {
		return m, nil
	}
	m.fetching = true
	m.notice = model.Notice{}
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(m.isbn.Value()))
}

func (m Model) fetchCmd(identifier string) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{notice: m.ctrl.Fetch(context.Background(), identifier)}
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.fetching {
		return m, nil
	}
	m.notice = m.ctrl.Submit(context.Background(), m.isbn.Value(), m.rating, m.reviewText.Value())
	if m.notice.Level == model.NoticeInfo {
		m.resetForm()
		m.refreshReviews()
	}
	return m, nil
}

func (m Model) clear() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Clear(context.Background()); err != nil {
		m.notice = model.Notice{Level: model.NoticeError, Text: "Error: " + err.Error()}
		return m, nil
	}
	m.resetForm()
	m.notice = model.Notice{}
	return m, nil
}

func (m *Model) resetForm() {
	m.isbn.Reset()
	m.reviewText.Reset()
	m.rating = model.DefaultRating
}

func (m *Model) refreshReviews() {
	reviews, err := m.ctrl.Reviews(context.Background())
	if err != nil {
		return
	}
	rows := make([]table.Row, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, table.Row{
			r.ISBN,
			r.Title,
			r.Author,
			ratingStars(r.Rating),
			r.ReviewText,
			r.Date.Format(time.DateOnly),
		})
	}
	m.reviews.SetRows(rows)
}

func (m Model) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = focusArea((int(m.focus) + delta + int(focusCount)) % int(focusCount))
	m.isbn.Blur()
	m.reviewText.Blur()
	m.reviews.Blur()
	var cmd tea.Cmd
	switch m.focus {
	case focusISBN:
		cmd = m.isbn.Focus()
	case focusReview:
		cmd = m.reviewText.Focus()
	case focusTable:
		m.reviews.Focus()
	}
	return m, cmd
}
