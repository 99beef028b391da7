package handler

import (
	"net/http"
	"time"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/pipeline"
	"inventory-rest-api/internal/service"
	"inventory-rest-api/pkg/response"
)

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieConfig
	now    func() time.Time
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *service.AuthService, cookie CookieConfig) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "token"
	}
	return &AuthHandler{auth: auth, cookie: cookie, now: time.Now}
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	UserID    int64      `json:"userId"`
	Role      model.Role `json:"role"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[RegisterRequest](req)

	user, err := h.auth.Register(req.Context(), body.Email, body.Password, model.Role(body.Role))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "User created successfully", user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, req *pipeline.Request) {
	body := pipeline.Body[LoginRequest](req)

	session, err := h.auth.Login(req.Context(), body.Email, body.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.ExpiresAt.Sub(h.now()).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})

	response.Message(w, http.StatusOK, "Logged in successfully", LoginResponse{
		UserID:    session.Identity.UserID,
		Role:      session.Identity.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /auth/logout. It always succeeds and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, req *pipeline.Request) {
	h.auth.Logout(req.Context(), req.Identity)

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})

	response.Message(w, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, req *pipeline.Request) {
	user, err := h.auth.Me(req.Context(), req.Identity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, user)
}
