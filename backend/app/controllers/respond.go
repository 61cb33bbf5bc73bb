package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"lost-and-found/backend/app/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeStrict rejects bodies carrying keys the request type does not declare.
func decodeStrict(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	return uint(id), err
}

// writeUserError renders ErrNotFound with user wording for handlers whose
// subject is an account rather than an item.
func writeUserError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeServiceError(w, err)
}

// writeServiceError maps service sentinels onto the HTTP taxonomy; anything
// unrecognized is a store failure whose message passes through on 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "You can only modify your own items")
	case errors.Is(err, services.ErrSelfAction), errors.Is(err, services.ErrLastAdmin), errors.Is(err, services.ErrDuplicateUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrAccountDeactivated):
		writeError(w, http.StatusForbidden, "Account is deactivated. Contact administrator.")
	case errors.Is(err, services.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, "Current password is incorrect")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
