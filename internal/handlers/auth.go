package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"study-rag/internal/user"
)

type AuthHandler struct {
	UserService *user.Service
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"ip":     r.RemoteAddr,
	}).Info("signup request received")

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("signup: invalid request body")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	u, err := h.UserService.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "invalid email"):
			respondError(w, http.StatusBadRequest, "Invalid email format")
		case strings.Contains(err.Error(), "password too short"):
			respondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		case strings.Contains(err.Error(), "email already exists"):
			respondError(w, http.StatusConflict, "Email already exists")
		default:
			respondError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("signup: user created successfully")

	respondJSON(w, http.StatusCreated, map[string]string{"message": "user created successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"ip":     r.RemoteAddr,
	}).Info("login request received")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid credentials") {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
		} else {
			logrus.WithError(err).WithField("email", req.Email).Error("login: an internal error occurred")
			respondError(w, http.StatusInternalServerError, "An internal error occurred")
		}
		return
	}

	logrus.WithField("email", req.Email).Info("login: user authenticated successfully")

	respondJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}
