package shared

import "fmt"

var (
	// Archive errors
	ErrArchiveOpen   = fmt.Errorf("cannot open export archive")
	ErrEntryNotFound = fmt.Errorf("archive entry not found")

	// Conversion errors
	ErrUnknownAuthor = fmt.Errorf("message author not in accepted user set")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
