package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/careapi/internal/constants"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// NewPatientsCommand creates the patients command group
func NewPatientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patients",
		Aliases: []string{"patient", "clients"},
		Short:   "Manage patients",
		Long:    "List and inspect patients and their program assignments",
	}

	cmd.AddCommand(newListCommand("patients",
		func(c careapi.Client) careapi.ListFunc[careapi.Patient] { return c.Patients().List },
		[]string{"ID", "Name", "Email", "Date of Birth", "Active"},
		func(p *careapi.Patient) []string {
			return []string{p.ID, p.FirstName + " " + p.LastName, orNA(p.Email), formatDate(p.DateOfBirth), yesNo(p.IsActive)}
		},
	))
	cmd.AddCommand(newGetCommand("patient",
		func(c careapi.Client) func(context.Context, string) (*careapi.Patient, error) { return c.Patients().Get },
		patientProperties,
	))
	cmd.AddCommand(newDeleteCommand("patient",
		func(c careapi.Client) func(context.Context, string) error { return c.Patients().Delete },
	))
	cmd.AddCommand(newPatientsProgramsCommand())
	cmd.AddCommand(newPatientsAssignCommand())
	cmd.AddCommand(newPatientsUnassignCommand())

	return cmd
}

func patientProperties(p *careapi.Patient) [][]string {
	return [][]string{
		{"ID", p.ID},
		{"Name", p.FirstName + " " + p.LastName},
		{"Email", orNA(p.Email)},
		{"Phone", orNA(p.Phone)},
		{"Date of Birth", formatDate(p.DateOfBirth)},
		{"Gender", orNA(p.Gender)},
		{"Practitioner", orNA(p.PractitionerID)},
		{"Notes", orNA(p.Notes)},
		{"Active", yesNo(p.IsActive)},
		{"Created", formatTime(p.CreatedAt)},
	}
}

func newPatientsProgramsCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "programs PATIENT_ID",
		Short: "List programs assigned to a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()
			patientID := args[0]

			var list careapi.ListFunc[careapi.Assignment] = func(
				ctx context.Context, params *careapi.QueryParams,
			) (*careapi.ListResponse[careapi.Assignment], error) {
				return client.Patients().ListPrograms(ctx, patientID, params)
			}

			value, assignments, err := fetch(cmd.Context(), opts, list)
			if err != nil {
				return describeError("failed to list patient programs", err)
			}

			rows := make([][]string, 0, len(assignments))
			for _, a := range assignments {
				rows = append(rows, []string{a.ID, a.ProgramID, string(a.Status), formatDate(a.StartDate), formatDate(a.EndDate)})
			}

			return render(cmd, value, []string{"ID", "Program", "Status", "Start", "End"}, rows)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newPatientsAssignCommand() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "assign PATIENT_ID PROGRAM_ID",
		Short: "Assign a program to a patient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &careapi.AssignProgramRequest{ProgramID: args[1]}

			var err error

			request.StartDate, err = parseDate(startDate)
			if err != nil {
				return err
			}

			request.EndDate, err = parseDate(endDate)
			if err != nil {
				return err
			}

			client := NewClient()

			assignment, err := client.Patients().AssignProgram(cmd.Context(), args[0], request)
			if err != nil {
				return describeError("failed to assign program", err)
			}

			return render(cmd, assignment, propertyHeader, [][]string{
				{"ID", assignment.ID},
				{"Patient", assignment.ClientID},
				{"Program", assignment.ProgramID},
				{"Status", string(assignment.Status)},
				{"Start", formatDate(assignment.StartDate)},
				{"End", formatDate(assignment.EndDate)},
			})
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date (YYYY-MM-DD)")

	return cmd
}

func newPatientsUnassignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign PATIENT_ID PROGRAM_ID",
		Short: "Remove a program assignment from a patient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()

			err := client.Patients().UnassignProgram(cmd.Context(), args[0], args[1])
			if err != nil {
				return describeError("failed to unassign program", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unassigned program %s from patient %s\n", args[1], args[0])

			return nil
		},
	}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // absent date
	}

	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return &parsed, nil
}
