package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hospitality-backend/internal/services"
	"hospitality-backend/pkg/utils"
)

// writeServiceError maps the service error taxonomy to HTTP codes. Anything
// outside the taxonomy is an upstream store failure; its message is forwarded
// with a 500 rather than masked behind an internal code.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		utils.Error(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		utils.Error(w, http.StatusConflict, conflictErr.Error())
		return
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.Error(w, http.StatusNotFound, notFoundErr.Error())
		return
	}

	utils.Error(w, http.StatusInternalServerError, err.Error())
}

// pathID reads the {id} path variable as an int.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// queryInt reads an optional integer query parameter, returning 0 when absent.
func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}
