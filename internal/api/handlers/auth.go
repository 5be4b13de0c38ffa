package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/ymestates/realty/internal/api/dto"
	"github.com/ymestates/realty/internal/api/middleware"
	"github.com/ymestates/realty/internal/auth"
	"github.com/ymestates/realty/internal/database/models"
)

type AuthHandler struct {
	authService   *auth.Service
	googleService *auth.GoogleService
	frontendURL   string
}

func NewAuthHandler(authService *auth.Service, googleService *auth.GoogleService, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

func toUserDTO(u *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Picture:    u.Picture,
		IsApproved: u.IsApproved,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	resp, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
		TeamCode: req.TeamCode,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			writeJSON(w, http.StatusConflict, dto.Err("Email already registered"))
		case errors.Is(err, auth.ErrInvalidTeamCode):
			writeJSON(w, http.StatusBadRequest, dto.Err("Invalid team code"))
		default:
			writeJSON(w, http.StatusInternalServerError, dto.Err("Registration failed"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Success: true,
		Token:   resp.Token,
		User:    toUserDTO(resp.User),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrWithDetails("Validation failed", errs))
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, dto.Err("Invalid credentials"))
		case errors.Is(err, auth.ErrPendingApproval):
			writeJSON(w, http.StatusForbidden, dto.Err("Account pending approval"))
		default:
			writeJSON(w, http.StatusInternalServerError, dto.Err("Login failed"))
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   resp.Token,
		User:    toUserDTO(resp.User),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		writeJSON(w, http.StatusUnauthorized, dto.Err("Access denied"))
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.Err("User not found"))
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(toUserDTO(user)))
}

// GoogleLogin starts the OAuth flow with a state cookie the callback checks.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	authURL, err := h.googleService.AuthURL(state)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, dto.Err("Google sign-in is not configured"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600,
	})

	http.Redirect(w, r, authURL, http.StatusFound)
}

// GoogleCallback finishes the flow and hands the browser back to the
// frontend with either a token or an error flag in the query string.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		h.redirectWithError(w, r, "auth_failed")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.redirectWithError(w, r, "auth_failed")
		return
	}

	resp, err := h.googleService.HandleCallback(r.Context(), code)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityIncomplete) {
			h.redirectWithError(w, r, "no_email")
			return
		}
		h.redirectWithError(w, r, "auth_failed")
		return
	}

	q := url.Values{}
	q.Set("auth", "success")
	q.Set("token", resp.Token)
	q.Set("name", resp.User.Name)
	q.Set("email", resp.User.Email)
	q.Set("role", resp.User.Role)
	if resp.User.Picture != "" {
		q.Set("picture", resp.User.Picture)
	}

	http.Redirect(w, r, h.frontendURL+"/index.html?"+q.Encode(), http.StatusFound)
}

func (h *AuthHandler) redirectWithError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, h.frontendURL+"/login.html?error="+url.QueryEscape(reason), http.StatusFound)
}
