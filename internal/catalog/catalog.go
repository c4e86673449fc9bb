// Package catalog tracks an ordered, append-only list of books and their
// borrowed/available status.
//
// A book is addressed by its zero-based position in the catalog. Books are
// never removed, so an index stays valid for the lifetime of the catalog.
//
// # Usage
//
//	c := catalog.New()
//	i := c.AddBook("Dune", "Frank Herbert")
//	if err := c.BorrowBook(i); errors.Is(err, catalog.ErrAlreadyBorrowed) {
//		// ...
//	}
//	for entry := range c.ListBorrowed() {
//		fmt.Println(entry.Index, entry.Name)
//	}
package catalog

import (
	"fmt"
	"iter"

	"github.com/mrlokans/librarytracker/internal/entities"
)

// Entry is a snapshot of one book together with its catalog index.
type Entry struct {
	Index    int
	Name     string
	Author   string
	Borrowed bool
}

// Status reports whether the listed book is available or borrowed.
func (e Entry) Status() entities.BookStatus {
	return entities.Book{Name: e.Name, Author: e.Author, Borrowed: e.Borrowed}.Status()
}

// Catalog is not safe for concurrent use.
type Catalog struct {
	books []entities.Book
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// AddBook appends an available book and returns its index.
// Empty names and authors are accepted.
func (c *Catalog) AddBook(name, author string) int {
	c.books = append(c.books, entities.NewBook(name, author))
	return len(c.books) - 1
}

// BorrowBook marks the book at index as borrowed.
func (c *Catalog) BorrowBook(index int) error {
	book, err := c.at(index)
	if err != nil {
		return err
	}
	if book.Borrowed {
		return fmt.Errorf("index %d: %w", index, ErrAlreadyBorrowed)
	}
	book.Borrowed = true
	return nil
}

// ReturnBook marks the book at index as available again.
func (c *Catalog) ReturnBook(index int) error {
	book, err := c.at(index)
	if err != nil {
		return err
	}
	if !book.Borrowed {
		return fmt.Errorf("index %d: %w", index, ErrNotBorrowed)
	}
	book.Borrowed = false
	return nil
}

// Book returns a copy of the book at index.
func (c *Catalog) Book(index int) (entities.Book, error) {
	book, err := c.at(index)
	if err != nil {
		return entities.Book{}, err
	}
	return *book, nil
}

// Count returns the number of books in the catalog.
func (c *Catalog) Count() int {
	return len(c.books)
}

// ListAll yields every book in insertion order. The sequence reads the
// catalog as it is iterated and may be ranged over any number of times.
func (c *Catalog) ListAll() iter.Seq[Entry] {
	return c.list(func(entities.Book) bool { return true })
}

// ListBorrowed yields the borrowed books in insertion order, keeping their
// catalog indices.
func (c *Catalog) ListBorrowed() iter.Seq[Entry] {
	return c.list(func(b entities.Book) bool { return b.Borrowed })
}

func (c *Catalog) list(keep func(entities.Book) bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := 0; i < len(c.books); i++ {
			book := c.books[i]
			if !keep(book) {
				continue
			}
			entry := Entry{
				Index:    i,
				Name:     book.Name,
				Author:   book.Author,
				Borrowed: book.Borrowed,
			}
			if !yield(entry) {
				return
			}
		}
	}
}

func (c *Catalog) at(index int) (*entities.Book, error) {
	if index < 0 || index >= len(c.books) {
		return nil, fmt.Errorf("index %d: %w", index, ErrIndexOutOfRange)
	}
	return &c.books[index], nil
}
