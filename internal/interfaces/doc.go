// Package interfaces holds compile-time checks for the tracker's extension points.
//
// # Extension Points
//
//   - console.Journal: records catalog operations made from the menu and lists
//     them back (implemented by activity.Service).
//
// # Adding a New Journal
//
// A journal only needs Record and Events:
//
//	type StderrJournal struct{}
//
//	func (StderrJournal) Record(action entities.ActivityAction, index int, book entities.Book, err error)
//	func (StderrJournal) Events() ([]entities.ActivityEvent, error)
//
//	var _ console.Journal = StderrJournal{}
//
// Pass it to console.NewShell in internal/cli/run.go.
package interfaces
