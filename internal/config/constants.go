package config

const (
	// JournalDSN keeps the activity journal in memory for the life of the process.
	JournalDSN = ":memory:"

	// DefaultJournalLimit is how many activity events the menu shows.
	DefaultJournalLimit = 50

	// EnvPrefix namespaces environment overrides, e.g. LIBRARY_VERBOSE.
	EnvPrefix = "library"
)
