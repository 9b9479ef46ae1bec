package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/careapi/internal/constants"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
	"github.com/fivetwenty-io/careapi/pkg/careclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"
	Yes          = "yes"
	No           = "no"
)

var (
	logger     = zerolog.Nop()
	cliVersion = "dev"
)

// SetLogger sets the logger used by the API client of every command.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetVersion sets the version reported in the User-Agent header.
func SetVersion(version string) {
	cliVersion = version
}

// NewClient creates an API client from the current flags, environment and
// config file.
func NewClient() careapi.Client {
	config := careapi.NewConfig(
		careapi.WithBaseURL(viper.GetString("api")),
		careapi.WithAPIKey(viper.GetString("token")),
		careapi.WithTimeout(viper.GetDuration("timeout")),
	)

	return careclient.New(config,
		careclient.WithLogger(careapi.NewZerologLogger(logger)),
		careclient.WithDebug(viper.GetBool("verbose")),
		careclient.WithUserAgent(constants.CLIUserAgent+"/"+cliVersion),
	)
}

// describeError adds a hint to errors the user can act on.
func describeError(action string, err error) error {
	if careapi.IsAuthenticationFailed(err) {
		return fmt.Errorf("%s: %w (run 'careapi login')", action, err)
	}

	return fmt.Errorf("%s: %w", action, err)
}

func outputFormat() (string, error) {
	output := viper.GetString("output")
	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutputType, output)
	}
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// render writes value in the selected output format. For table output the
// header and rows are used instead of value.
func render(cmd *cobra.Command, value interface{}, header []string, rows [][]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		return writeJSON(out, value)
	case constants.FormatYAML:
		return writeYAML(out, value)
	default:
		return writeTable(out, header, rows)
	}
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

// propertyHeader is the header of every detail view.
var propertyHeader = []string{"Property", "Value"}

func orNA(value *string) string {
	if value == nil || *value == "" {
		return NotAvailable
	}

	return *value
}

func intOrNA(value *int) string {
	if value == nil {
		return NotAvailable
	}

	return strconv.Itoa(*value)
}

func yesNo(value bool) string {
	if value {
		return Yes
	}

	return No
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return NotAvailable
	}

	return value.Local().Format(constants.DateTimeLayout)
}

func formatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return NotAvailable
	}

	return value.Format(constants.DateLayout)
}
