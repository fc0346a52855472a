package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required,min=4"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// createUserRequest is the admin create/update payload. The id field is only
// honored on PUT; a POST carrying one is rejected. Roles is how ADMIN is
// granted: when present it replaces the stored role set.
type createUserRequest struct {
	ID        string   `json:"id,omitempty"`
	Username  string   `json:"username" validate:"required"`
	Password  string   `json:"password"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles,omitempty" validate:"dive,oneof=ADMIN USER ANONYMOUS"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Roles     []string `json:"roles"`
}
