package threshold

import "errors"

var (
	ErrMissingDefault = errors.New("threshold table has no DEFAULT entry")
	ErrMalformedRules = errors.New("malformed threshold rules")
)
