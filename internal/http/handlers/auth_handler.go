// Auth HTTP handlers.
//
// This file exposes REST endpoints for identity and session management:
//   - POST /auth/register  (create account, start session)
//   - POST /auth/login     (resolve account by bank id, start session)
//   - POST /auth/logout    (revoke session, clear cookie)
//   - GET  /auth/me        (current account)
//
// Sessions are server-side rows referenced by an opaque httpOnly cookie; the
// handlers here only mint and clear that cookie, verification happens in the
// session middleware.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/services"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	// BankID is the external bank identity; it must be unused.
	BankID    string `json:"bankId" binding:"required,min=1,max=64" example:"UA-9001"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100" example:"Олена"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100" example:"Коваль"`
	Phone     string `json:"phone" binding:"omitempty,max=32" example:"+380501112233"`
}

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	BankID string `json:"bankId" binding:"required,min=1,max=64" example:"UA-9001"`
}

// LogoutResponse is the acknowledgement body for POST /auth/logout.
type LogoutResponse struct {
	OK bool `json:"ok"`
}

// startSession issues a session for uid and attaches the cookie. Failures are
// reported as 500; the account itself was already created/resolved.
func (h *Handlers) startSession(c *gin.Context, uid string) bool {
	sess, err := h.authSvc.StartSession(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not start session")
		return false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sess.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	return true
}

// Register godoc
// @ID          register
// @Summary     Register a new account
// @Description Creates an account keyed by a unique bank id and starts a session (sets the session cookie).
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload or bank id already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.authSvc.Register(c.Request.Context(), services.RegisterInput{
		BankID:    strings.TrimSpace(req.BankID),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
	})
	switch {
	case errors.Is(err, services.ErrBankIDTaken):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "bank id already registered")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not register user")
		return
	}

	if !h.startSession(c, u.ID) {
		return
	}
	ok(c, http.StatusCreated, u)
}

// Login godoc
// @ID          login
// @Summary     Log in by bank id
// @Description Resolves the account for the given bank id and starts a session (sets the session cookie).
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     401  {object}  handlers.ErrorResponse  "Unknown bank id"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.authSvc.Login(c.Request.Context(), strings.TrimSpace(req.BankID))
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "unknown bank id")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not log in")
		return
	}

	if !h.startSession(c, u.ID) {
		return
	}
	ok(c, http.StatusOK, u)
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Revokes the current session and clears the session cookie. Succeeds even without a session.
// @Tags        Auth
// @Produce     json
//
// @Success     200  {object}  handlers.LogoutResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.authSvc.EndSession(c.Request.Context(), token); err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not log out")
			return
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	ok(c, http.StatusOK, LogoutResponse{OK: true})
}

// Me godoc
// @ID          me
// @Summary     Current account
// @Description Returns the account bound to the session cookie.
// @Tags        Auth
// @Produce     json
//
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	u, err := h.authSvc.GetUser(c.Request.Context(), uid)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		// Session survived the account; treat as logged out.
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load user")
		return
	}
	ok(c, http.StatusOK, u)
}
