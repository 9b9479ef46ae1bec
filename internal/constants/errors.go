package constants

import "errors"

// Configuration errors.
var (
	ErrNotAuthenticated = errors.New("not authenticated, use 'careapi login' first")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrNoConfigPath     = errors.New("failed to locate config file")
)

// Input errors.
var (
	ErrEmailRequired     = errors.New("email is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidOutputType = errors.New("output format must be 'table', 'json' or 'yaml'")
	ErrInvalidFilter     = errors.New("filter must be key=value")
)
