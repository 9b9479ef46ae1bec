package client

import (
	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// ExercisesClient implements careapi.ExercisesClient.
type ExercisesClient struct {
	resource[careapi.Exercise, careapi.ExerciseCreateRequest, careapi.ExerciseUpdateRequest]
}

// NewExercisesClient creates a new exercises client.
func NewExercisesClient(httpClient *internalhttp.Client) *ExercisesClient {
	return &ExercisesClient{
		resource: newResource[careapi.Exercise, careapi.ExerciseCreateRequest, careapi.ExerciseUpdateRequest](
			httpClient, "/exercises"),
	}
}
