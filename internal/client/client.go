package client

import (
	"net/http"

	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// Options are the transport settings that are not part of careapi.Config.
type Options struct {
	Logger     careapi.Logger
	Debug      bool
	UserAgent  string
	HTTPClient *http.Client
}

// Client implements the careapi.Client interface.
type Client struct {
	httpClient *internalhttp.Client

	// Resource clients
	auth      *AuthClient
	users     *UsersClient
	patients  *PatientsClient
	programs  *ProgramsClient
	exercises *ExercisesClient
}

// createHTTPClientOptions builds HTTP client options from opts.
func createHTTPClientOptions(opts Options) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if opts.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(opts.Logger))
	}

	if opts.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if opts.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(opts.UserAgent))
	}

	if opts.HTTPClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(opts.HTTPClient))
	}

	return httpOpts
}

// New creates a client with exactly one transport shared by every endpoint
// group. A nil config means defaults.
func New(config *careapi.Config, opts Options) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(config, createHTTPClientOptions(opts)...),
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.patients = NewPatientsClient(c.httpClient)
	c.programs = NewProgramsClient(c.httpClient)
	c.exercises = NewExercisesClient(c.httpClient)
}

// SetAPIKey implements careapi.Client.SetAPIKey.
func (c *Client) SetAPIKey(apiKey string) {
	c.httpClient.SetAPIKey(apiKey)
}

// Config implements careapi.Client.Config.
func (c *Client) Config() careapi.Config {
	return c.httpClient.Config()
}

// Auth implements careapi.Client.Auth.
func (c *Client) Auth() careapi.AuthClient {
	return c.auth
}

// Users implements careapi.Client.Users.
func (c *Client) Users() careapi.UsersClient {
	return c.users
}

// Patients implements careapi.Client.Patients.
func (c *Client) Patients() careapi.PatientsClient {
	return c.patients
}

// Programs implements careapi.Client.Programs.
func (c *Client) Programs() careapi.ProgramsClient {
	return c.programs
}

// Exercises implements careapi.Client.Exercises.
func (c *Client) Exercises() careapi.ExercisesClient {
	return c.exercises
}
