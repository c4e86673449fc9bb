// Package console implements the interactive menu front end of the tracker.
//
// The shell reads one line per answer, so a menu choice, a book name, an
// author and a book index are each entered on their own line. End of input
// at any prompt ends the session as if Exit had been chosen.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/mrlokans/librarytracker/internal/catalog"
	"github.com/mrlokans/librarytracker/internal/entities"
)

const (
	optionExit         = 0
	optionAdd          = 1
	optionBorrow       = 2
	optionReturn       = 3
	optionListAll      = 4
	optionListBorrowed = 5
	optionActivity     = 6
)

// Journal records catalog operations made from the shell.
type Journal interface {
	Record(action entities.ActivityAction, index int, book entities.Book, err error)
	Events() ([]entities.ActivityEvent, error)
}

// Shell is the interactive menu over a single catalog.
type Shell struct {
	catalog *catalog.Catalog
	journal Journal
	reader  *bufio.Reader
	out     io.Writer
	readErr error
}

// NewShell creates a shell over c. journal may be nil, in which case the
// activity log option is not offered.
func NewShell(c *catalog.Catalog, journal Journal, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog: c,
		journal: journal,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run loops over menu choices until Exit is chosen or input ends.
// It only returns an error when reading input fails.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "====== Library Tracker ======")

	for {
		s.printMenu()

		line, ok := s.readLine()
		if !ok {
			return s.exit()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Printf("Unrecognized menu input %q", line)
			choice = -1
		}

		if choice == optionExit {
			return s.exit()
		}

		if !s.dispatch(choice) {
			return s.exit()
		}
	}
}

// dispatch runs one menu command. It reports false when input ended
// before the command could finish.
func (s *Shell) dispatch(choice int) bool {
	switch {
	case choice == optionAdd:
		return s.addBook()
	case choice == optionBorrow:
		return s.changeStatus(entities.ActivityBorrow, "Enter book index to borrow: ", "Book borrowed successfully!", s.catalog.BorrowBook)
	case choice == optionReturn:
		return s.changeStatus(entities.ActivityReturn, "Enter book index to return: ", "Book returned successfully!", s.catalog.ReturnBook)
	case choice == optionListAll:
		s.displayBooks()
	case choice == optionListBorrowed:
		s.displayBorrowedBooks()
	case choice == optionActivity && s.journal != nil:
		s.displayActivity()
	default:
		fmt.Fprintln(s.out, "Invalid option.")
	}
	return true
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose an option:")
	fmt.Fprintln(s.out, "1. Add Book")
	fmt.Fprintln(s.out, "2. Borrow Book")
	fmt.Fprintln(s.out, "3. Return Book")
	fmt.Fprintln(s.out, "4. Display All Books")
	fmt.Fprintln(s.out, "5. Display Borrowed Books")
	if s.journal != nil {
		fmt.Fprintln(s.out, "6. Show Activity Log")
	}
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprint(s.out, "Enter choice: ")
}

func (s *Shell) addBook() bool {
	name, ok := s.prompt("Enter book name: ")
	if !ok {
		return false
	}
	author, ok := s.prompt("Enter author: ")
	if !ok {
		return false
	}

	index := s.catalog.AddBook(name, author)
	s.record(entities.ActivityAdd, index, nil)
	fmt.Fprintln(s.out, "Book added successfully!")
	return true
}

func (s *Shell) changeStatus(action entities.ActivityAction, prompt, success string, op func(int) error) bool {
	s.displayBooks()
	if s.catalog.Count() == 0 {
		return true
	}

	line, ok := s.prompt(prompt)
	if !ok {
		return false
	}

	// An index too large for int comes back clamped with ErrRange and is
	// attempted like any other out of range index.
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		fmt.Fprintln(s.out, "Invalid book index.")
		return true
	}

	err = op(index)
	s.record(action, index, err)
	if err != nil {
		fmt.Fprintln(s.out, errorMessage(err))
		return true
	}

	fmt.Fprintln(s.out, success)
	return true
}

func (s *Shell) displayBooks() {
	if s.catalog.Count() == 0 {
		fmt.Fprintln(s.out, "No books in the library.")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "All Books:")
	for entry := range s.catalog.ListAll() {
		fmt.Fprintf(s.out, "%d. %s by %s [%s]\n", entry.Index, entry.Name, entry.Author, entry.Status())
	}
}

func (s *Shell) displayBorrowedBooks() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Borrowed Books:")

	found := false
	for entry := range s.catalog.ListBorrowed() {
		fmt.Fprintf(s.out, "%d. %s by %s\n", entry.Index, entry.Name, entry.Author)
		found = true
	}
	if !found {
		fmt.Fprintln(s.out, "No books are currently borrowed.")
	}
}

func (s *Shell) displayActivity() {
	events, err := s.journal.Events()
	if err != nil {
		fmt.Fprintf(s.out, "Could not read activity log: %v\n", err)
		return
	}
	if len(events) == 0 {
		fmt.Fprintln(s.out, "No activity recorded.")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Activity Log:")
	for i, event := range events {
		line := fmt.Sprintf("%d. %s #%d", i+1, event.Action, event.BookIndex)
		if event.BookName != "" || event.BookAuthor != "" {
			line += fmt.Sprintf(" %q by %s", event.BookName, event.BookAuthor)
		}
		line += fmt.Sprintf(" [%s]", event.Status)
		if event.ErrorMsg != "" {
			line += ": " + event.ErrorMsg
		}
		fmt.Fprintln(s.out, line)
	}
}

// record journals an operation on the book at index. The book is looked up
// after the operation, so an out of range index is journaled without one.
func (s *Shell) record(action entities.ActivityAction, index int, opErr error) {
	if s.journal == nil {
		return
	}
	book, _ := s.catalog.Book(index)
	s.journal.Record(action, index, book, opErr)
}

func (s *Shell) exit() error {
	fmt.Fprintln(s.out, "Exiting Library Tracker. Goodbye!")
	return s.readErr
}

func (s *Shell) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

// readLine reads one line of any length. A final line without a newline
// still counts; only a read failure or bare end of input reports false.
func (s *Shell) readLine() (string, bool) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), true
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, catalog.ErrIndexOutOfRange):
		return "Invalid book index."
	case errors.Is(err, catalog.ErrAlreadyBorrowed):
		return "Book is already borrowed."
	case errors.Is(err, catalog.ErrNotBorrowed):
		return "Book is not currently borrowed."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
