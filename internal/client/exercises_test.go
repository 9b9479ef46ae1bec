package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

func testExercise(id string) *careapi.Exercise {
	bodyPart := "knee"

	return &careapi.Exercise{
		Resource:     careapi.Resource{ID: id},
		Name:         "Wall squat",
		BodyPart:     &bodyPart,
		Equipment:    []string{"wall"},
		Instructions: []string{"Lean against the wall", "Slide down to 90 degrees"},
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestExercisesClient(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		RunListTests(t, []TestListOperation[careapi.Exercise]{
			{
				Name:          "by body part",
				Params:        careapi.NewQueryParams().WithFilter("bodyPart", "knee").WithLimit(50),
				ExpectedPath:  "/exercises",
				ExpectedQuery: "body_part=knee&limit=50",
				StatusCode:    http.StatusOK,
				Response: careapi.ListResponse[careapi.Exercise]{
					Data:  []careapi.Exercise{*testExercise("e1")},
					Total: 1,
					Page:  1,
					Limit: 50,
				},
				WantCount: 1,
			},
			{
				Name:         "unauthorized",
				ExpectedPath: "/exercises",
				StatusCode:   http.StatusUnauthorized,
				WantErr:      true,
				ErrKind:      careapi.KindAuthenticationFailed,
			},
		}, func(c *Client) func(context.Context, *careapi.QueryParams) (*careapi.ListResponse[careapi.Exercise], error) {
			return c.Exercises().List
		})
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		RunGetTests(t, []TestGetOperation[careapi.Exercise]{
			{
				Name:         "existing exercise",
				ID:           "e1",
				ExpectedPath: "/exercises/e1",
				StatusCode:   http.StatusOK,
				Response:     testExercise("e1"),
			},
		}, func(c *Client) func(context.Context, string) (*careapi.Exercise, error) {
			return c.Exercises().Get
		})
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		RunCreateTests(t, []TestCreateOperation[careapi.ExerciseCreateRequest, careapi.Exercise]{
			{
				Name:         "with equipment",
				Request:      &careapi.ExerciseCreateRequest{Name: "Wall squat", Equipment: []string{"wall"}},
				ExpectedPath: "/exercises",
				ExpectedBody: `{"name":"Wall squat","equipment":["wall"]}`,
				StatusCode:   http.StatusCreated,
				Response:     testExercise("e1"),
			},
			{
				Name:         "conflict",
				Request:      &careapi.ExerciseCreateRequest{Name: "Wall squat"},
				ExpectedPath: "/exercises",
				StatusCode:   http.StatusConflict,
				Response:     errorMessage("Exercise already exists"),
				WantErr:      true,
				ErrKind:      careapi.KindHTTP,
			},
		}, func(c *Client) func(context.Context, *careapi.ExerciseCreateRequest) (*careapi.Exercise, error) {
			return c.Exercises().Create
		})
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		video := "https://videos.example.com/e1.mp4"

		RunUpdateTests(t, []TestUpdateOperation[careapi.ExerciseUpdateRequest, careapi.Exercise]{
			{
				Name:         "video url",
				ID:           "e1",
				Request:      &careapi.ExerciseUpdateRequest{VideoURL: &video},
				ExpectedPath: "/exercises/e1",
				ExpectedBody: `{"videoUrl":"https://videos.example.com/e1.mp4"}`,
				StatusCode:   http.StatusOK,
				Response:     testExercise("e1"),
			},
		}, func(c *Client) func(context.Context, string, *careapi.ExerciseUpdateRequest) (*careapi.Exercise, error) {
			return c.Exercises().Update
		})
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		RunDeleteTests(t, []TestDeleteOperation{
			{
				Name:         "no content",
				ID:           "e1",
				ExpectedPath: "/exercises/e1",
				StatusCode:   http.StatusNoContent,
			},
			{
				Name:         "in use",
				ID:           "e1",
				ExpectedPath: "/exercises/e1",
				StatusCode:   http.StatusConflict,
				Response:     errorMessage("Exercise is used by a program"),
				WantErr:      true,
				ErrKind:      careapi.KindHTTP,
			},
		}, func(c *Client) func(context.Context, string) error {
			return c.Exercises().Delete
		})
	})
}
