package ftlmove

import "errors"

// ErrorKind tells a caller whether a failure stops the whole run or only one
// language directory.
type ErrorKind int

const (
	// ConfigError aborts the run: missing key list, no language directories.
	ConfigError ErrorKind = iota + 1
	// SkippableError skips one language directory; the run continues.
	SkippableError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "config"
	case SkippableError:
		return "skippable"
	default:
		return "unknown"
	}
}

// Error is the migrator error type.
type Error interface {
	Error() string
	Unwrap() error
	Kind() ErrorKind
	Path() string // File or directory the error is about; may be empty.
}

type DefaultError struct {
	err     error
	message string
	kind    ErrorKind
	path    string
}

func (me DefaultError) Error() string {
	return me.message
}

func (me *DefaultError) Unwrap() error {
	return me.err
}

func (me *DefaultError) Kind() ErrorKind {
	return me.kind
}

func (me *DefaultError) Path() string {
	return me.path
}

func newConfigError(path string, message string, err error) error {
	return &DefaultError{kind: ConfigError, path: path, message: message, err: err}
}

func newSkippableError(path string, message string, err error) error {
	return &DefaultError{kind: SkippableError, path: path, message: message, err: err}
}

// IsConfigError reports whether err aborts a run because of its inputs.
func IsConfigError(err error) bool {
	return kindOf(err) == ConfigError
}

// IsSkippable reports whether err only concerns a single language directory.
func IsSkippable(err error) bool {
	return kindOf(err) == SkippableError
}

func kindOf(err error) ErrorKind {
	var me Error
	if errors.As(err, &me) {
		return me.Kind()
	}
	return 0
}
