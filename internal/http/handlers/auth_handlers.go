package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/flowershop/internal/auth"
)

// LoginHandler godoc
// @Summary Exchange the operator password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body OperatorLogin true "Operator password"
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Invalid credentials"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req OperatorLogin
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if !auth.CheckOperator(req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken("operator")
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
