package config

const (
	// DefaultListFormat is the default discovery wire format. DOT is the
	// richer format (it carries source file/line per test unit).
	DefaultListFormat = ListDOT
	// DefaultResultsFile is the default results JSON file name
	DefaultResultsFile = "run-results.json"
	// DefaultResultsDir is the default results directory
	DefaultResultsDir = "storage"
)

// Environment keys read from the process environment or a .env file in
// the working directory.
const (
	EnvExe          = "BTP_EXE"
	EnvSourcePrefix = "BTP_SOURCE_PREFIX"
	EnvListFormat   = "BTP_LIST_FORMAT"
	EnvResultsFile  = "BTP_RESULTS_FILE"
	EnvResultsDir   = "BTP_RESULTS_DIR"
	EnvDBHost       = "BTP_DB_HOST"
	EnvDBPort       = "BTP_DB_PORT"
	EnvDBUser       = "BTP_DB_USERNAME"
	EnvDBPassword   = "BTP_DB_PASSWORD"
	EnvDBDatabase   = "BTP_DB_DATABASE"
)
