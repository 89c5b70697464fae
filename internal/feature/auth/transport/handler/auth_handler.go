// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/transport/http/dto"
	"task_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns it.
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	// Authenticate verifies an email/password pair and returns the user.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	// IssueToken authenticates the user and returns a signed API token.
	IssueToken(ctx context.Context, email, password string) (string, error)
	// StartSession creates a new session for the given user.
	StartSession(ctx context.Context, userID uint, userAgent, ipAddress string) (*entity.Session, error)
	// SessionUser resolves a session ID to its user.
	SessionUser(ctx context.Context, sessionID string) (*entity.User, error)
	// EndSession revokes the session with the given ID.
	EndSession(ctx context.Context, sessionID string) error
}

// AuthHandler serves the registration, sign-in and sign-out flows plus the
// API token endpoint.
type AuthHandler struct {
	auth       AuthUsecase
	cookieName string
	cookieTTL  int // seconds
}

// NewAuthHandler creates a new AuthHandler.
// cookieTTL is the session cookie max-age in seconds.
func NewAuthHandler(auth AuthUsecase, cookieName string, cookieTTL int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName, cookieTTL: cookieTTL}
}

// ShowSignup renders the registration form.
// GET /signup/
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "registration.html", gin.H{"title": "Sign Up", "form_email": ""})
}

// Signup handles the registration form submission.
// On success the new user is signed in immediately and redirected to the task list.
// POST /signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.HTML(http.StatusBadRequest, "registration.html", gin.H{
			"title":      "Sign Up",
			"form_email": c.PostForm("email"),
			"form_error": "Please enter a valid email and two matching passwords (6-50 characters).",
		})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), form.Email, form.Password1)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", form.Email, "remote_addr", c.ClientIP())
		status := http.StatusBadRequest
		msg := err.Error()
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			status = http.StatusConflict
			msg = "An account with this email already exists."
		}
		c.HTML(status, "registration.html", gin.H{
			"title":      "Sign Up",
			"form_email": form.Email,
			"form_error": msg,
		})
		return
	}

	h.establishSession(c, user)
	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/tasks/")
}

// ShowLogin renders the sign-in form.
// GET /signin/
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Sign In", "form_email": ""})
}

// Login handles the sign-in form submission.
// Failures re-render with a generic message that does not disclose whether
// the email or the password was wrong.
// POST /signin/
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"title":      "Sign In",
			"form_email": c.PostForm("email"),
			"form_error": "Please enter your email and password.",
		})
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		slog.Warn("login failed", "email", form.Email, "remote_addr", c.ClientIP())
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title":      "Sign In",
			"form_email": form.Email,
			"form_error": "Invalid email or password.",
		})
		return
	}

	h.establishSession(c, user)
	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/tasks/")
}

// Logout revokes the current session, clears the cookie and redirects to the
// index page. It succeeds regardless of prior authentication state.
// GET /logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.cookieName); err == nil && sessionID != "" {
		if err := h.auth.EndSession(c.Request.Context(), sessionID); err != nil {
			slog.Warn("session revoke failed", "error", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// TokenLogin authenticates an API client and returns a signed JWT.
// POST /api/login
func (h *AuthHandler) TokenLogin(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("token login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Do not disclose whether the email exists
		slog.Warn("token login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("token login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// establishSession starts a session for the user and sets the cookie.
// A session that cannot be persisted is logged but does not fail the flow;
// the user can sign in again.
func (h *AuthHandler) establishSession(c *gin.Context, user *entity.User) {
	session, err := h.auth.StartSession(c.Request.Context(), user.ID, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		return
	}
	c.SetCookie(h.cookieName, session.ID, h.cookieTTL, "/", "", false, true)
}
