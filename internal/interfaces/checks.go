package interfaces

// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/librarytracker/internal/activity"
	"github.com/mrlokans/librarytracker/internal/console"
)

var _ console.Journal = (*activity.Service)(nil)
