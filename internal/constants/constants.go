package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the platform endpoint used when none is configured.
	DefaultBaseURL = "https://api.careapi.io"

	// DefaultHTTPTimeout bounds connection setup and the whole exchange.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTP header names and values.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"
	BearerPrefix    = "Bearer "
)

// HTTP status boundaries.
const (
	HTTPStatusOK           = 200
	HTTPStatusSuccessMax   = 299
	HTTPStatusUnauthorized = 401
	HTTPStatusForbidden    = 403
	HTTPStatusNotFound     = 404
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	// JSONIndentSize is the indent for json and yaml output.
	JSONIndentSize = 2
)

// CLI configuration.
const (
	ConfigDirName  = ".careapi"
	ConfigFileName = "config.yml"
	EnvPrefix      = "CAREAPI"
	CLIUserAgent   = "careapi-cli"
)

// Date layouts used for display.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
