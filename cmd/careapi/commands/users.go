package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List and inspect platform user accounts",
	}

	cmd.AddCommand(newListCommand("users",
		func(c careapi.Client) careapi.ListFunc[careapi.User] { return c.Users().List },
		[]string{"ID", "Email", "Name", "Role", "Active"},
		func(u *careapi.User) []string {
			return []string{u.ID, u.Email, u.FullName(), string(u.Role), yesNo(u.IsActive)}
		},
	))
	cmd.AddCommand(newGetCommand("user",
		func(c careapi.Client) func(context.Context, string) (*careapi.User, error) { return c.Users().Get },
		userProperties,
	))
	cmd.AddCommand(newDeleteCommand("user",
		func(c careapi.Client) func(context.Context, string) error { return c.Users().Delete },
	))

	return cmd
}

func userProperties(u *careapi.User) [][]string {
	return [][]string{
		{"ID", u.ID},
		{"Email", u.Email},
		{"Name", u.FullName()},
		{"Role", string(u.Role)},
		{"Phone", orNA(u.Phone)},
		{"Active", yesNo(u.IsActive)},
		{"Created", formatTime(u.CreatedAt)},
		{"Updated", formatTime(u.UpdatedAt)},
	}
}
