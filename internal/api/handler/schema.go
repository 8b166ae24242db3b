package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// --- Clients ---

type createClientRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	// Age is a pointer so an omitted field is told apart from zero.
	Age *int `json:"age" validate:"required,gte=0,lte=2147483647"`
}

type clientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

type createClientResponse struct {
	Message string         `json:"message"`
	Client  clientResponse `json:"client"`
}

type outcomeRecordResponse struct {
	ID         int64     `json:"id"`
	ProgramID  int64     `json:"program_id"`
	Program    string    `json:"program"`
	Outcome    string    `json:"outcome"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
}

type clientDetailResponse struct {
	clientResponse
	Programs []string                `json:"programs"`
	Outcomes []outcomeRecordResponse `json:"outcomes"`
}

// --- Programs ---

type createProgramRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type programResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type createProgramResponse struct {
	Message string          `json:"message"`
	Program programResponse `json:"program"`
}

// --- Enrollment ---

type enrollRequest struct {
	ClientID  int64 `json:"client_id"  validate:"required,gt=0"`
	ProgramID int64 `json:"program_id" validate:"required,gt=0"`
}

type enrollResponse struct {
	Message         string `json:"message"`
	ClientID        int64  `json:"client_id"`
	Client          string `json:"client"`
	ProgramID       int64  `json:"program_id"`
	Program         string `json:"program"`
	AlreadyEnrolled bool   `json:"already_enrolled"`
}

// --- Outcomes ---

type addOutcomeRequest struct {
	ClientID  int64  `json:"client_id"  validate:"required,gt=0"`
	ProgramID int64  `json:"program_id" validate:"required,gt=0"`
	Outcome   string `json:"outcome"    validate:"required,max=100"`
	Notes     string `json:"notes"`
}

type outcomeResponse struct {
	ID         int64     `json:"id"`
	ClientID   int64     `json:"client_id"`
	ProgramID  int64     `json:"program_id"`
	Outcome    string    `json:"outcome"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
}

type addOutcomeResponse struct {
	Message string          `json:"message"`
	Outcome outcomeResponse `json:"outcome"`
}

// --- Activity log ---

type activityLogResponse struct {
	ID        int64     `json:"id"`
	Doctor    string    `json:"doctor"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
