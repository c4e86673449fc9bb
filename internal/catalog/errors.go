package catalog

import "errors"

// Errors returned by catalog operations. Returned errors wrap these with the
// offending index, so match them with errors.Is.
var (
	// ErrIndexOutOfRange is returned when an index does not name a book in the catalog.
	ErrIndexOutOfRange = errors.New("book index out of range")

	// ErrAlreadyBorrowed is returned when borrowing a book that is already borrowed.
	ErrAlreadyBorrowed = errors.New("book is already borrowed")

	// ErrNotBorrowed is returned when returning a book that is not borrowed.
	ErrNotBorrowed = errors.New("book is not currently borrowed")
)
