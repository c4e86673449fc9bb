package entities

// BookStatus is the circulation state of a tracked book.
type BookStatus string

const (
	BookStatusAvailable BookStatus = "Available"
	BookStatusBorrowed  BookStatus = "Borrowed"
)

// Book is a single tracked book. Books are identified by their position in
// the catalog, so there is no ID field.
type Book struct {
	Name     string
	Author   string
	Borrowed bool
}

// NewBook returns an available book.
func NewBook(name, author string) Book {
	return Book{Name: name, Author: author}
}

// Status reports whether the book is available or borrowed.
func (b Book) Status() BookStatus {
	if b.Borrowed {
		return BookStatusBorrowed
	}
	return BookStatusAvailable
}
