package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/careapi/internal/constants"
)

func TestNewUsersCommand(t *testing.T) {
	t.Parallel()

	cmd := NewUsersCommand()
	assert.Equal(t, "users", cmd.Use)
	assert.Equal(t, []string{"user"}, cmd.Aliases)
	assert.Equal(t, "Manage users", cmd.Short)

	for _, name := range []string{"list", "get", "delete"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}
}

func TestNewPatientsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewPatientsCommand()
	assert.Equal(t, "patients", cmd.Use)
	assert.Contains(t, cmd.Aliases, "clients")
	assert.Len(t, cmd.Commands(), 6)

	assign := findSubcommand(cmd, "assign")
	require.NotNil(t, assign)
	assert.Equal(t, "assign PATIENT_ID PROGRAM_ID", assign.Use)
	assert.NotNil(t, assign.Flags().Lookup("start-date"))
	assert.NotNil(t, assign.Flags().Lookup("end-date"))

	programs := findSubcommand(cmd, "programs")
	require.NotNil(t, programs)
	assert.NotNil(t, programs.Flags().Lookup("all"))
}

func TestNewProgramsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewProgramsCommand()
	assert.Equal(t, "programs", cmd.Use)

	for _, name := range []string{"list", "get", "delete", "exercises", "duplicate"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}
}

func TestNewExercisesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewExercisesCommand()
	assert.Equal(t, "exercises", cmd.Use)
	assert.Len(t, cmd.Commands(), 2)
}

func TestListCommandFlags(t *testing.T) {
	t.Parallel()

	list := findSubcommand(NewUsersCommand(), "list")
	require.NotNil(t, list)
	assert.Equal(t, []string{"ls"}, list.Aliases)

	for _, name := range []string{"page", "limit", "search", "sort-by", "sort-order", "filter", "all"} {
		assert.NotNil(t, list.Flags().Lookup(name), "flag %s should exist", name)
	}

	assert.Equal(t, "false", list.Flags().Lookup("all").DefValue)
}

func TestNewLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := NewLoginCommand()
	assert.Equal(t, "login", cmd.Use)

	email := cmd.Flags().Lookup("email")
	require.NotNil(t, email)
	assert.Equal(t, "e", email.Shorthand)

	password := cmd.Flags().Lookup("password")
	require.NotNil(t, password)
	assert.Equal(t, "p", password.Shorthand)
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	for _, name := range []string{"show", "set", "unset"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}
}

func TestListOptions_Params(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     listOptions
		expected string
		wantErr  error
	}{
		{
			name:     "empty",
			opts:     listOptions{},
			expected: "",
		},
		{
			name:     "paging and search",
			opts:     listOptions{page: 2, limit: 50, search: "knee"},
			expected: "limit=50&page=2&search=knee",
		},
		{
			name:     "sort and filters",
			opts:     listOptions{sortBy: "createdAt", sortOrder: "DESC", filters: []string{"isActive=true"}},
			expected: "is_active=true&sort_by=createdAt&sort_order=desc",
		},
		{
			name:    "invalid sort order",
			opts:    listOptions{sortBy: "name", sortOrder: "sideways"},
			wantErr: constants.ErrInvalidSortOrder,
		},
		{
			name:    "malformed filter",
			opts:    listOptions{filters: []string{"status"}},
			wantErr: constants.ErrInvalidFilter,
		},
		{
			name:    "filter without key",
			opts:    listOptions{filters: []string{"=active"}},
			wantErr: constants.ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := tt.opts.params()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, params.ToValues().Encode())
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = parseDate("2026-03-01")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 3, int(date.Month()))

	_, err = parseDate("03/01/2026")
	require.Error(t, err)
}
