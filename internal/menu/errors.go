package menu

import "errors"

var (
	// ErrUnreadable reports that the source file or stdin could not be read.
	ErrUnreadable = errors.New("source unreadable")
	// ErrMalformed reports a document that is not valid JSON/YAML.
	ErrMalformed = errors.New("malformed document")
	// ErrItemsMissing reports a missing items array or one of the wrong type.
	ErrItemsMissing = errors.New("items array missing or not an array")
	// ErrUnknownFormat reports a format other than json, text or yaml.
	ErrUnknownFormat = errors.New("unknown format")
)
