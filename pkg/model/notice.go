package model

// NoticeLevel defines the severity of a user-facing notice.
type NoticeLevel string

// Notice levels surfaced by form actions.
const (
	NoticeInfo    = NoticeLevel("info")
	NoticeWarning = NoticeLevel("warning")
	NoticeError   = NoticeLevel("error")
)

// Notice defines a transient message produced by a form action
// and shown to the user until the next action replaces it.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// None reports whether the notice carries no message.
func (n Notice) None() bool {
	return n.Level == "" && n.Text == ""
}
