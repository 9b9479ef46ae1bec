package careapi

import (
	"time"
)

// Resource represents the fields shared by all platform resources.
type Resource struct {
	ID        string    `json:"id"                  yaml:"id"`
	CreatedAt time.Time `json:"createdAt,omitzero"  yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"  yaml:"updated_at,omitempty"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Data       []T  `json:"data"                 yaml:"data"`
	Total      int  `json:"total"                yaml:"total"`
	Page       int  `json:"page"                 yaml:"page"`
	Limit      int  `json:"limit"                yaml:"limit"`
	TotalPages *int `json:"totalPages,omitempty" yaml:"total_pages,omitempty"`
}

// HasNextPage reports whether a page after this one exists. When the server
// omits totalPages it is derived from total and limit.
func (l *ListResponse[T]) HasNextPage() bool {
	if l.TotalPages != nil {
		return l.Page < *l.TotalPages
	}

	if l.Limit <= 0 {
		return false
	}

	return l.Page*l.Limit < l.Total
}

// UserRole names a platform role.
type UserRole string

// Known roles.
const (
	UserRoleAdmin        UserRole = "admin"
	UserRolePractitioner UserRole = "practitioner"
	UserRoleClient       UserRole = "client"
)

// User represents a platform account.
type User struct {
	Resource `yaml:",inline"`

	Email     string   `json:"email"               yaml:"email"`
	FirstName string   `json:"firstName,omitempty" yaml:"first_name,omitempty"`
	LastName  string   `json:"lastName,omitempty"  yaml:"last_name,omitempty"`
	Role      UserRole `json:"role,omitempty"      yaml:"role,omitempty"`
	Phone     *string  `json:"phone,omitempty"     yaml:"phone,omitempty"`
	IsActive  bool     `json:"isActive"            yaml:"is_active"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserCreateRequest represents a request to create a user.
type UserCreateRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Role      UserRole `json:"role,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
}

// UserUpdateRequest represents a request to update a user.
type UserUpdateRequest struct {
	Email     *string   `json:"email,omitempty"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Role      *UserRole `json:"role,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
}

// LoginRequest represents the credentials exchanged for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a self-service account registration.
type RegisterRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role,omitempty"`
}

// RefreshTokenRequest represents a token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ChangePasswordRequest changes the password of the authenticated user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse represents a successful authentication. The client does not
// store the returned token; call Client.SetAPIKey with AccessToken.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"            yaml:"access_token"`
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refresh_token,omitempty"`
	TokenType    string `json:"tokenType,omitempty"    yaml:"token_type,omitempty"`
	ExpiresIn    int    `json:"expiresIn,omitempty"    yaml:"expires_in,omitempty"`
	User         *User  `json:"user,omitempty"         yaml:"user,omitempty"`
}

// Patient represents a client of a practitioner. The platform exposes
// patients under the /clients resource.
type Patient struct {
	Resource `yaml:",inline"`

	FirstName      string     `json:"firstName"                yaml:"first_name"`
	LastName       string     `json:"lastName"                 yaml:"last_name"`
	Email          *string    `json:"email,omitempty"          yaml:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"          yaml:"phone,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"    yaml:"date_of_birth,omitempty"`
	Gender         *string    `json:"gender,omitempty"         yaml:"gender,omitempty"`
	Notes          *string    `json:"notes,omitempty"          yaml:"notes,omitempty"`
	PractitionerID *string    `json:"practitionerId,omitempty" yaml:"practitioner_id,omitempty"`
	IsActive       bool       `json:"isActive"                 yaml:"is_active"`
}

// PatientCreateRequest represents a request to create a patient.
type PatientCreateRequest struct {
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          *string    `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Gender         *string    `json:"gender,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	PractitionerID *string    `json:"practitionerId,omitempty"`
}

// PatientUpdateRequest represents a request to update a patient.
type PatientUpdateRequest struct {
	FirstName      *string    `json:"firstName,omitempty"`
	LastName       *string    `json:"lastName,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Gender         *string    `json:"gender,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	PractitionerID *string    `json:"practitionerId,omitempty"`
	IsActive       *bool      `json:"isActive,omitempty"`
}

// Difficulty grades programs and exercises.
type Difficulty string

// Known difficulties.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Program represents a healthcare program made of ordered exercises.
type Program struct {
	Resource `yaml:",inline"`

	Name          string            `json:"name"                    yaml:"name"`
	Description   *string           `json:"description,omitempty"   yaml:"description,omitempty"`
	DurationWeeks *int              `json:"durationWeeks,omitempty" yaml:"duration_weeks,omitempty"`
	Difficulty    *Difficulty       `json:"difficulty,omitempty"    yaml:"difficulty,omitempty"`
	IsTemplate    bool              `json:"isTemplate"              yaml:"is_template"`
	CreatedBy     *string           `json:"createdBy,omitempty"     yaml:"created_by,omitempty"`
	Exercises     []ProgramExercise `json:"exercises,omitempty"     yaml:"exercises,omitempty"`
}

// ProgramCreateRequest represents a request to create a program.
type ProgramCreateRequest struct {
	Name          string      `json:"name"`
	Description   *string     `json:"description,omitempty"`
	DurationWeeks *int        `json:"durationWeeks,omitempty"`
	Difficulty    *Difficulty `json:"difficulty,omitempty"`
	IsTemplate    bool        `json:"isTemplate,omitempty"`
}

// ProgramUpdateRequest represents a request to update a program.
type ProgramUpdateRequest struct {
	Name          *string     `json:"name,omitempty"`
	Description   *string     `json:"description,omitempty"`
	DurationWeeks *int        `json:"durationWeeks,omitempty"`
	Difficulty    *Difficulty `json:"difficulty,omitempty"`
	IsTemplate    *bool       `json:"isTemplate,omitempty"`
}

// Exercise represents an exercise from the exercise library.
type Exercise struct {
	Resource `yaml:",inline"`

	Name         string      `json:"name"                   yaml:"name"`
	Description  *string     `json:"description,omitempty"  yaml:"description,omitempty"`
	Category     *string     `json:"category,omitempty"     yaml:"category,omitempty"`
	BodyPart     *string     `json:"bodyPart,omitempty"     yaml:"body_part,omitempty"`
	Equipment    []string    `json:"equipment,omitempty"    yaml:"equipment,omitempty"`
	Difficulty   *Difficulty `json:"difficulty,omitempty"   yaml:"difficulty,omitempty"`
	Instructions []string    `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	VideoURL     *string     `json:"videoUrl,omitempty"     yaml:"video_url,omitempty"`
	ImageURL     *string     `json:"imageUrl,omitempty"     yaml:"image_url,omitempty"`
}

// ExerciseCreateRequest represents a request to create an exercise.
type ExerciseCreateRequest struct {
	Name         string      `json:"name"`
	Description  *string     `json:"description,omitempty"`
	Category     *string     `json:"category,omitempty"`
	BodyPart     *string     `json:"bodyPart,omitempty"`
	Equipment    []string    `json:"equipment,omitempty"`
	Difficulty   *Difficulty `json:"difficulty,omitempty"`
	Instructions []string    `json:"instructions,omitempty"`
	VideoURL     *string     `json:"videoUrl,omitempty"`
	ImageURL     *string     `json:"imageUrl,omitempty"`
}

// ExerciseUpdateRequest represents a request to update an exercise.
type ExerciseUpdateRequest struct {
	Name         *string     `json:"name,omitempty"`
	Description  *string     `json:"description,omitempty"`
	Category     *string     `json:"category,omitempty"`
	BodyPart     *string     `json:"bodyPart,omitempty"`
	Equipment    []string    `json:"equipment,omitempty"`
	Difficulty   *Difficulty `json:"difficulty,omitempty"`
	Instructions []string    `json:"instructions,omitempty"`
	VideoURL     *string     `json:"videoUrl,omitempty"`
	ImageURL     *string     `json:"imageUrl,omitempty"`
}

// ProgramExercise places an exercise inside a program.
type ProgramExercise struct {
	ID              string    `json:"id"                        yaml:"id"`
	ProgramID       string    `json:"programId"                 yaml:"program_id"`
	ExerciseID      string    `json:"exerciseId"                yaml:"exercise_id"`
	Exercise        *Exercise `json:"exercise,omitempty"        yaml:"exercise,omitempty"`
	Sets            *int      `json:"sets,omitempty"            yaml:"sets,omitempty"`
	Reps            *int      `json:"reps,omitempty"            yaml:"reps,omitempty"`
	DurationSeconds *int      `json:"durationSeconds,omitempty" yaml:"duration_seconds,omitempty"`
	RestSeconds     *int      `json:"restSeconds,omitempty"     yaml:"rest_seconds,omitempty"`
	Order           int       `json:"order"                     yaml:"order"`
	Notes           *string   `json:"notes,omitempty"           yaml:"notes,omitempty"`
}

// ProgramExerciseRequest adds an exercise to a program.
type ProgramExerciseRequest struct {
	ExerciseID      string  `json:"exerciseId"`
	Sets            *int    `json:"sets,omitempty"`
	Reps            *int    `json:"reps,omitempty"`
	DurationSeconds *int    `json:"durationSeconds,omitempty"`
	RestSeconds     *int    `json:"restSeconds,omitempty"`
	Order           *int    `json:"order,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AssignmentStatus is the lifecycle state of a program assignment.
type AssignmentStatus string

// Known assignment states.
const (
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusPaused    AssignmentStatus = "paused"
)

// Assignment links a patient to a program.
type Assignment struct {
	Resource `yaml:",inline"`

	ClientID  string           `json:"clientId"            yaml:"client_id"`
	ProgramID string           `json:"programId"           yaml:"program_id"`
	Program   *Program         `json:"program,omitempty"   yaml:"program,omitempty"`
	StartDate *time.Time       `json:"startDate,omitempty" yaml:"start_date,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"   yaml:"end_date,omitempty"`
	Status    AssignmentStatus `json:"status"              yaml:"status"`
}

// AssignProgramRequest assigns a program to a patient.
type AssignProgramRequest struct {
	ProgramID string     `json:"programId"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}
