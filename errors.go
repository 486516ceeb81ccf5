package mdfront

import "errors"

// Sentinel errors carried in ParseResult.Err.
var (
	ErrEmptyInput              = errors.New("empty content")
	ErrFileRead                = errors.New("error reading file")
	ErrMissingHeader           = errors.New("missing header")
	ErrMissingClosingDelimiter = errors.New("missing closing ---")
	ErrMetadataParse           = errors.New("failed to parse metadata")

	// Configuration errors returned by constructors.
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrUnknownFormat     = errors.New("unknown metadata format")
)
