package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/careapi/internal/constants"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// NewProgramsCommand creates the programs command group
func NewProgramsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "programs",
		Aliases: []string{"program"},
		Short:   "Manage programs",
		Long:    "List and inspect healthcare programs and their exercises",
	}

	cmd.AddCommand(newListCommand("programs",
		func(c careapi.Client) careapi.ListFunc[careapi.Program] { return c.Programs().List },
		[]string{"ID", "Name", "Weeks", "Difficulty", "Template"},
		func(p *careapi.Program) []string {
			return []string{p.ID, p.Name, intOrNA(p.DurationWeeks), difficulty(p.Difficulty), yesNo(p.IsTemplate)}
		},
	))
	cmd.AddCommand(newGetCommand("program",
		func(c careapi.Client) func(context.Context, string) (*careapi.Program, error) { return c.Programs().Get },
		programProperties,
	))
	cmd.AddCommand(newDeleteCommand("program",
		func(c careapi.Client) func(context.Context, string) error { return c.Programs().Delete },
	))
	cmd.AddCommand(newProgramsExercisesCommand())
	cmd.AddCommand(newProgramsDuplicateCommand())

	return cmd
}

func programProperties(p *careapi.Program) [][]string {
	return [][]string{
		{"ID", p.ID},
		{"Name", p.Name},
		{"Description", orNA(p.Description)},
		{"Duration (weeks)", intOrNA(p.DurationWeeks)},
		{"Difficulty", difficulty(p.Difficulty)},
		{"Template", yesNo(p.IsTemplate)},
		{"Created By", orNA(p.CreatedBy)},
		{"Exercises", strconv.Itoa(len(p.Exercises))},
		{"Created", formatTime(p.CreatedAt)},
	}
}

func difficulty(d *careapi.Difficulty) string {
	if d == nil {
		return NotAvailable
	}

	return string(*d)
}

func newProgramsExercisesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exercises PROGRAM_ID",
		Short: "List the exercises of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()

			exercises, err := client.Programs().ListExercises(cmd.Context(), args[0])
			if err != nil {
				return describeError("failed to list program exercises", err)
			}

			rows := make([][]string, 0, len(exercises))
			for _, e := range exercises {
				name := NotAvailable
				if e.Exercise != nil {
					name = e.Exercise.Name
				}

				rows = append(rows, []string{
					strconv.Itoa(e.Order), e.ExerciseID, name,
					intOrNA(e.Sets), intOrNA(e.Reps), intOrNA(e.DurationSeconds),
				})
			}

			return render(cmd, exercises, []string{"Order", "Exercise ID", "Name", "Sets", "Reps", "Seconds"}, rows)
		},
	}
}

func newProgramsDuplicateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate PROGRAM_ID",
		Short: "Copy a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()

			program, err := client.Programs().Duplicate(cmd.Context(), args[0])
			if err != nil {
				return describeError("failed to duplicate program", err)
			}

			if format, _ := outputFormat(); format != constants.FormatTable {
				return render(cmd, program, nil, nil)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Duplicated program %s as %s\n", args[0], program.ID)

			return nil
		},
	}
}
