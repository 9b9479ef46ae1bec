package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

func testProgram(id string) *careapi.Program {
	weeks := 6
	difficulty := careapi.Difficulty("intermediate")

	return &careapi.Program{
		Resource:      careapi.Resource{ID: id},
		Name:          "Knee rehab",
		DurationWeeks: &weeks,
		Difficulty:    &difficulty,
	}
}

func TestProgramsClient_CRUD(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		RunListTests(t, []TestListOperation[careapi.Program]{
			{
				Name:          "templates only",
				Params:        careapi.NewQueryParams().WithFilter("isTemplate", "true"),
				ExpectedPath:  "/programs",
				ExpectedQuery: "is_template=true",
				StatusCode:    http.StatusOK,
				Response: careapi.ListResponse[careapi.Program]{
					Data:  []careapi.Program{*testProgram("p1"), *testProgram("p2")},
					Total: 2,
					Page:  1,
					Limit: 20,
				},
				WantCount: 2,
			},
		}, func(c *Client) func(context.Context, *careapi.QueryParams) (*careapi.ListResponse[careapi.Program], error) {
			return c.Programs().List
		})
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		RunGetTests(t, []TestGetOperation[careapi.Program]{
			{
				Name:         "existing program",
				ID:           "p1",
				ExpectedPath: "/programs/p1",
				StatusCode:   http.StatusOK,
				Response:     testProgram("p1"),
			},
		}, func(c *Client) func(context.Context, string) (*careapi.Program, error) {
			return c.Programs().Get
		})
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		RunCreateTests(t, []TestCreateOperation[careapi.ProgramCreateRequest, careapi.Program]{
			{
				Name:         "minimal",
				Request:      &careapi.ProgramCreateRequest{Name: "Knee rehab"},
				ExpectedPath: "/programs",
				ExpectedBody: `{"name":"Knee rehab"}`,
				StatusCode:   http.StatusCreated,
				Response:     testProgram("p1"),
			},
		}, func(c *Client) func(context.Context, *careapi.ProgramCreateRequest) (*careapi.Program, error) {
			return c.Programs().Create
		})
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		weeks := 8

		RunUpdateTests(t, []TestUpdateOperation[careapi.ProgramUpdateRequest, careapi.Program]{
			{
				Name:         "duration",
				ID:           "p1",
				Request:      &careapi.ProgramUpdateRequest{DurationWeeks: &weeks},
				ExpectedPath: "/programs/p1",
				ExpectedBody: `{"durationWeeks":8}`,
				StatusCode:   http.StatusOK,
				Response:     testProgram("p1"),
			},
		}, func(c *Client) func(context.Context, string, *careapi.ProgramUpdateRequest) (*careapi.Program, error) {
			return c.Programs().Update
		})
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		RunDeleteTests(t, []TestDeleteOperation{
			{
				Name:         "no content",
				ID:           "p1",
				ExpectedPath: "/programs/p1",
				StatusCode:   http.StatusNoContent,
			},
		}, func(c *Client) func(context.Context, string) error {
			return c.Programs().Delete
		})
	})
}

func TestProgramsClient_ListExercises(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sets := 3

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/programs/p1/exercises", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)

			writeJSON(w, http.StatusOK, []careapi.ProgramExercise{
				{ID: "pe1", ProgramID: "p1", ExerciseID: "e1", Sets: &sets, Order: 1},
				{ID: "pe2", ProgramID: "p1", ExerciseID: "e2", Order: 2},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		exercises, err := client.Programs().ListExercises(context.Background(), "p1")
		require.NoError(t, err)
		require.Len(t, exercises, 2)
		assert.Equal(t, "e1", exercises[0].ExerciseID)
		assert.Equal(t, 3, *exercises[0].Sets)
		assert.Nil(t, exercises[1].Sets)
	})

	t.Run("object instead of array", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"id": "pe1"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		exercises, err := client.Programs().ListExercises(context.Background(), "p1")
		require.Error(t, err)
		assert.ErrorIs(t, err, careapi.ErrDecoding)
		assert.Nil(t, exercises)
	})
}

func TestProgramsClient_AddExercise(t *testing.T) {
	t.Parallel()

	reps := 12

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/programs/p1/exercises", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body careapi.ProgramExerciseRequest

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "e1", body.ExerciseID)
		assert.Equal(t, 12, *body.Reps)

		writeJSON(w, http.StatusCreated, careapi.ProgramExercise{ID: "pe1", ProgramID: "p1", ExerciseID: "e1", Reps: &reps})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	exercise, err := client.Programs().AddExercise(context.Background(), "p1",
		&careapi.ProgramExerciseRequest{ExerciseID: "e1", Reps: &reps})
	require.NoError(t, err)
	assert.Equal(t, "pe1", exercise.ID)
}

func TestProgramsClient_RemoveExercise(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/programs/p1/exercises/e1", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	require.NoError(t, client.Programs().RemoveExercise(context.Background(), "p1", "e1"))
}

func TestProgramsClient_Duplicate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/programs/p1/duplicate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		writeJSON(w, http.StatusCreated, testProgram("p2"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	program, err := client.Programs().Duplicate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p2", program.ID)
	assert.Equal(t, "Knee rehab", program.Name)
}
