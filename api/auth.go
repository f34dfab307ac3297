package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pathfinderhq/pathfinder/pkg/models"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

type AuthHandler struct {
	adminRepo     repository.AdminRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ar repository.AdminRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{adminRepo: ar, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid request")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Missing fields")
		return
	}

	ctx := r.Context()

	existing, err := h.adminRepo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error creating account")
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error creating account")
		return
	}

	admin := models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	id, err := h.adminRepo.CreateAdmin(ctx, &admin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error creating account")
		return
	}

	token, err := h.issueToken(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error creating account")
		return
	}

	respondData(w, authResponse{Token: token}, http.StatusCreated)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, errInvalidInput, "Missing fields")
		return
	}

	admin, err := h.adminRepo.GetAdminByEmail(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error signing in")
		return
	}
	if admin == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.issueToken(admin.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errInternal, "Error signing in")
		return
	}

	respondData(w, authResponse{Token: token}, http.StatusOK)
}

func (h *AuthHandler) issueToken(adminID int64) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(h.tokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(h.jwtSecret))
}
