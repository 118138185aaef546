package ftlmove

const (
	DefaultBaseDir             = "."
	DefaultSourceFilename      = "common.ftl"
	DefaultDestinationFilename = "new_component.ftl"
)

type Config struct {
	BaseDir             string
	KeysFile            string // list of keys to move, one per line or a YAML list
	SourceFilename      string
	DestinationFilename string
	// Rename replaces the first occurrence of the source filename prefix in
	// each moved key with the destination filename prefix.
	Rename bool
	// DryRun reports what would move without writing any file.
	DryRun bool
	// Languages restricts the run to directories matching one of the patterns.
	Languages Patterns
	Reporter  Reporter
}

// Stats summarizes one run.
type Stats struct {
	Directories int // language directories considered
	Processed   int
	Skipped     int
	KeysMoved   int
	KeysRenamed int
}
