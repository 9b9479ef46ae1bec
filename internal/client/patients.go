package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// Patients are exposed remotely as "clients".
const patientsPath = "/clients"

var patientProgramRoutes = struct {
	list     Route
	assign   Route
	unassign Route
}{
	list:     Route{Method: http.MethodGet, Path: patientsPath + "/{id}/programs"},
	assign:   Route{Method: http.MethodPost, Path: patientsPath + "/{id}/programs"},
	unassign: Route{Method: http.MethodDelete, Path: patientsPath + "/{id}/programs/{programId}"},
}

// PatientsClient implements careapi.PatientsClient.
type PatientsClient struct {
	resource[careapi.Patient, careapi.PatientCreateRequest, careapi.PatientUpdateRequest]
}

// NewPatientsClient creates a new patients client.
func NewPatientsClient(httpClient *internalhttp.Client) *PatientsClient {
	return &PatientsClient{
		resource: newResource[careapi.Patient, careapi.PatientCreateRequest, careapi.PatientUpdateRequest](
			httpClient, patientsPath),
	}
}

// ListPrograms implements careapi.PatientsClient.ListPrograms.
func (c *PatientsClient) ListPrograms(
	ctx context.Context,
	patientID string,
	params *careapi.QueryParams,
) (*careapi.ListResponse[careapi.Assignment], error) {
	req := patientProgramRoutes.list.Request(params.ToValues(), nil, patientID)

	return internalhttp.Call[careapi.ListResponse[careapi.Assignment]](ctx, c.httpClient, req)
}

// AssignProgram implements careapi.PatientsClient.AssignProgram.
func (c *PatientsClient) AssignProgram(
	ctx context.Context,
	patientID string,
	request *careapi.AssignProgramRequest,
) (*careapi.Assignment, error) {
	req := patientProgramRoutes.assign.Request(nil, request, patientID)

	return internalhttp.Call[careapi.Assignment](ctx, c.httpClient, req)
}

// UnassignProgram implements careapi.PatientsClient.UnassignProgram.
func (c *PatientsClient) UnassignProgram(ctx context.Context, patientID, programID string) error {
	return c.httpClient.Exec(ctx, patientProgramRoutes.unassign.Request(nil, nil, patientID, programID))
}
