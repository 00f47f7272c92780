package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/go-chi/chi/v5"
)

func idParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

func formInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(formValue(r, name))
	return n
}

// displayError extracts the message a screen shows for a failed action.
// Validation failures list every field message verbatim.
func displayError(err error) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// failureRedirect applies the non-validation error policy: an auth failure
// forces re-login (the session is already cleared by the client layer),
// anything else goes back to the owning list.
func failureRedirect(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	if clients.IsUnauthorized(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}
