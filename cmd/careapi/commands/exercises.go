package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// NewExercisesCommand creates the exercises command group
func NewExercisesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercises",
		Aliases: []string{"exercise"},
		Short:   "Browse the exercise library",
	}

	cmd.AddCommand(newListCommand("exercises",
		func(c careapi.Client) careapi.ListFunc[careapi.Exercise] { return c.Exercises().List },
		[]string{"ID", "Name", "Category", "Body Part", "Difficulty"},
		func(e *careapi.Exercise) []string {
			return []string{e.ID, e.Name, orNA(e.Category), orNA(e.BodyPart), difficulty(e.Difficulty)}
		},
	))
	cmd.AddCommand(newGetCommand("exercise",
		func(c careapi.Client) func(context.Context, string) (*careapi.Exercise, error) { return c.Exercises().Get },
		func(e *careapi.Exercise) [][]string {
			equipment := NotAvailable
			if len(e.Equipment) > 0 {
				equipment = strings.Join(e.Equipment, ", ")
			}

			return [][]string{
				{"ID", e.ID},
				{"Name", e.Name},
				{"Description", orNA(e.Description)},
				{"Category", orNA(e.Category)},
				{"Body Part", orNA(e.BodyPart)},
				{"Equipment", equipment},
				{"Difficulty", difficulty(e.Difficulty)},
				{"Video", orNA(e.VideoURL)},
			}
		},
	))

	return cmd
}
