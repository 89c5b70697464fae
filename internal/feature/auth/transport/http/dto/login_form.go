package dto

// LoginForm represents the sign-in form posted to /signin/.
// It performs structural validation only; credential verification belongs to
// the auth usecase.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email,max=50"`
	Password string `form:"password" binding:"required,max=50"`
}

// LoginReq represents the JSON body for the /api/login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the successful /api/login response body.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the generic JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
