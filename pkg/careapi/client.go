package careapi

import (
	"context"
)

// AuthClient covers the authentication endpoints.
type AuthClient interface {
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, request *RefreshTokenRequest) (*AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*User, error)
	ForgotPassword(ctx context.Context, request *ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, request *ResetPasswordRequest) error
	ChangePassword(ctx context.Context, request *ChangePasswordRequest) error
}

// UsersClient manages platform accounts.
type UsersClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[User], error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, id string, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, id string) error
}

// PatientsClient manages the clients (patients) of practitioners.
type PatientsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Patient], error)
	Get(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, request *PatientCreateRequest) (*Patient, error)
	Update(ctx context.Context, id string, request *PatientUpdateRequest) (*Patient, error)
	Delete(ctx context.Context, id string) error

	ListPrograms(ctx context.Context, patientID string, params *QueryParams) (*ListResponse[Assignment], error)
	AssignProgram(ctx context.Context, patientID string, request *AssignProgramRequest) (*Assignment, error)
	UnassignProgram(ctx context.Context, patientID, programID string) error
}

// ProgramsClient manages healthcare programs.
type ProgramsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Program], error)
	Get(ctx context.Context, id string) (*Program, error)
	Create(ctx context.Context, request *ProgramCreateRequest) (*Program, error)
	Update(ctx context.Context, id string, request *ProgramUpdateRequest) (*Program, error)
	Delete(ctx context.Context, id string) error

	ListExercises(ctx context.Context, programID string) ([]ProgramExercise, error)
	AddExercise(ctx context.Context, programID string, request *ProgramExerciseRequest) (*ProgramExercise, error)
	RemoveExercise(ctx context.Context, programID, exerciseID string) error
	Duplicate(ctx context.Context, programID string) (*Program, error)
}

// ExercisesClient manages the exercise library.
type ExercisesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Exercise], error)
	Get(ctx context.Context, id string) (*Exercise, error)
	Create(ctx context.Context, request *ExerciseCreateRequest) (*Exercise, error)
	Update(ctx context.Context, id string, request *ExerciseUpdateRequest) (*Exercise, error)
	Delete(ctx context.Context, id string) error
}

// ResourceClients provides access to all endpoint groups. Every group
// returned by one Client shares that client's transport and credential.
type ResourceClients interface {
	Auth() AuthClient
	Users() UsersClient
	Patients() PatientsClient
	Programs() ProgramsClient
	Exercises() ExercisesClient
}

// CredentialManager exposes the mutable credential.
type CredentialManager interface {
	// SetAPIKey replaces the credential used by every subsequent request of
	// every endpoint group. Requests already in flight keep the credential
	// they captured. There is no expiry tracking and no automatic refresh.
	SetAPIKey(apiKey string)

	// Config returns a snapshot of the current configuration.
	Config() Config
}

// Client is the facade: every endpoint group plus the shared credential.
type Client interface {
	ResourceClients
	CredentialManager
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
