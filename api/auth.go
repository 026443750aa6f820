package api

import (
	"encoding/json"
	"net/http"

	"booking-system/auth"
	"booking-system/user"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "username and password are required"})
		return
	}

	userAccessor := user.NewAccessor(a.db)

	existing, err := userAccessor.FindByUsername(r.Context(), req.Username)
	if err != nil {
		a.internalError(w, "signup lookup", err)
		return
	}
	if existing != nil {
		a.JSON(w, http.StatusBadRequest, map[string]any{"message": "Username already taken"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		a.internalError(w, "signup hash", err)
		return
	}

	if _, err := userAccessor.InsertUser(r.Context(), req.Username, hashed); err != nil {
		a.internalError(w, "signup insert", err)
		return
	}

	a.JSON(w, http.StatusCreated, map[string]any{"message": "User registered successfully"})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	userAccessor := user.NewAccessor(a.db)

	u, err := userAccessor.FindByUsername(r.Context(), req.Username)
	if err != nil {
		a.internalError(w, "login lookup", err)
		return
	}
	if u == nil {
		a.JSON(w, http.StatusBadRequest, map[string]any{"message": "Username or password incorrect"})
		return
	}

	if !auth.VerifyPassword(u.Password, req.Password) {
		a.JSON(w, http.StatusBadRequest, map[string]any{"auth": false, "token": nil})
		return
	}

	token, err := auth.IssueToken(a.secret, auth.Claims{ID: u.ID, Username: u.Username})
	if err != nil {
		a.internalError(w, "login token", err)
		return
	}

	a.JSON(w, http.StatusOK, map[string]any{"auth": true, "token": token})
}

// me echoes the identity proven by the bearer token.
func (a *API) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		a.JSON(w, http.StatusUnauthorized, map[string]any{"error": "missing claims"})
		return
	}

	a.JSON(w, http.StatusOK, map[string]any{"id": claims.ID, "username": claims.Username})
}
