package model

import "fmt"

// Book defines normalized metadata for a single catalog record.
// A Book is produced only by a successful catalog lookup and is
// replaced wholesale by the next one.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Publisher   string `json:"publisher,omitempty"`
	PublishedAt string `json:"publishedDate,omitempty"`
	PageCount   int    `json:"pageCount,omitempty"`
}

func (b *Book) String() string {
	return fmt.Sprintf("Book{Title=%s, Author=%s}", b.Title, b.Author)
}
