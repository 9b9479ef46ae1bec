package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

const programsPath = "/programs"

var programExerciseRoutes = struct {
	list      Route
	add       Route
	remove    Route
	duplicate Route
}{
	list:      Route{Method: http.MethodGet, Path: programsPath + "/{id}/exercises"},
	add:       Route{Method: http.MethodPost, Path: programsPath + "/{id}/exercises"},
	remove:    Route{Method: http.MethodDelete, Path: programsPath + "/{id}/exercises/{exerciseId}"},
	duplicate: Route{Method: http.MethodPost, Path: programsPath + "/{id}/duplicate"},
}

// ProgramsClient implements careapi.ProgramsClient.
type ProgramsClient struct {
	resource[careapi.Program, careapi.ProgramCreateRequest, careapi.ProgramUpdateRequest]
}

// NewProgramsClient creates a new programs client.
func NewProgramsClient(httpClient *internalhttp.Client) *ProgramsClient {
	return &ProgramsClient{
		resource: newResource[careapi.Program, careapi.ProgramCreateRequest, careapi.ProgramUpdateRequest](
			httpClient, programsPath),
	}
}

// ListExercises implements careapi.ProgramsClient.ListExercises.
func (c *ProgramsClient) ListExercises(ctx context.Context, programID string) ([]careapi.ProgramExercise, error) {
	exercises, err := internalhttp.Call[[]careapi.ProgramExercise](ctx, c.httpClient,
		programExerciseRoutes.list.Request(nil, nil, programID))
	if err != nil {
		return nil, err
	}

	return *exercises, nil
}

// AddExercise implements careapi.ProgramsClient.AddExercise.
func (c *ProgramsClient) AddExercise(
	ctx context.Context,
	programID string,
	request *careapi.ProgramExerciseRequest,
) (*careapi.ProgramExercise, error) {
	req := programExerciseRoutes.add.Request(nil, request, programID)

	return internalhttp.Call[careapi.ProgramExercise](ctx, c.httpClient, req)
}

// RemoveExercise implements careapi.ProgramsClient.RemoveExercise.
func (c *ProgramsClient) RemoveExercise(ctx context.Context, programID, exerciseID string) error {
	return c.httpClient.Exec(ctx, programExerciseRoutes.remove.Request(nil, nil, programID, exerciseID))
}

// Duplicate implements careapi.ProgramsClient.Duplicate.
func (c *ProgramsClient) Duplicate(ctx context.Context, programID string) (*careapi.Program, error) {
	return internalhttp.Call[careapi.Program](ctx, c.httpClient, programExerciseRoutes.duplicate.Request(nil, nil, programID))
}
