package models

// RegisterRequest is the body of a local account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of a username/password login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the body of a federated login. Credential is the
// compact ID token handed out by Google Identity Services.
type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

// JWTResponse is returned by every successful login.
type JWTResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// CSRFToken is the anti-forgery token payload handed to browser clients.
type CSRFToken struct {
	Token         string `json:"token"`
	HeaderName    string `json:"headerName"`
	ParameterName string `json:"parameterName"`
}
