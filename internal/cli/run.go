package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/librarytracker/internal/activity"
	"github.com/mrlokans/librarytracker/internal/catalog"
	"github.com/mrlokans/librarytracker/internal/config"
	"github.com/mrlokans/librarytracker/internal/console"
	"github.com/mrlokans/librarytracker/internal/database"
	activityRepo "github.com/mrlokans/librarytracker/internal/database/activity"
)

// RunCommand starts the interactive library tracker.
type RunCommand struct {
	Verbose   bool
	NoJournal bool
	Version   string

	cfg *config.Config
	in  io.Reader
	out io.Writer
	log io.Writer
}

func NewRunCommand(cfg *config.Config, version string) *RunCommand {
	return &RunCommand{
		Version: version,
		cfg:     cfg,
		in:      os.Stdin,
		out:     os.Stdout,
		log:     os.Stderr,
	}
}

func (cmd *RunCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)

	fs.BoolVar(&cmd.Verbose, "verbose", cmd.cfg.Verbose, "Enable verbose logging on stderr")
	fs.BoolVar(&cmd.NoJournal, "no-journal", !cmd.cfg.Journal.Enabled, "Disable the in-memory activity journal")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Track books and their borrowed status from an interactive menu.\n")
		fmt.Fprintf(os.Stderr, "Nothing is saved; the catalog is lost on exit.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  LIBRARY_VERBOSE          default for -verbose\n")
		fmt.Fprintf(os.Stderr, "  LIBRARY_JOURNAL_ENABLED  set to false for the -no-journal default\n")
		fmt.Fprintf(os.Stderr, "  LIBRARY_JOURNAL_LIMIT    number of events shown by the activity log (default %d)\n", config.DefaultJournalLimit)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return nil
}

func (cmd *RunCommand) Run() error {
	if cmd.Verbose {
		log.SetOutput(cmd.log)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	log.Printf("Starting Library Tracker v%s", cmd.Version)

	var journal console.Journal
	if !cmd.NoJournal {
		db, err := database.NewDatabase(config.JournalDSN, cmd.Verbose)
		if err != nil {
			return fmt.Errorf("failed to open activity journal: %w", err)
		}
		defer db.Close()

		svc := activity.NewService(activityRepo.NewRepository(db.DB), cmd.cfg.Journal.Limit)
		log.Printf("Activity journal session %s", svc.SessionID())
		journal = svc
	}

	shell := console.NewShell(catalog.New(), journal, cmd.in, cmd.out)
	if err := shell.Run(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}
