package handlers

import (
	"log/slog"
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
)

// UserHandler covers the admin-only user administration screens.
type UserHandler struct {
	users  *clients.UserClient
	render *Renderer
	logger *slog.Logger
}

func NewUserHandler(users *clients.UserClient, render *Renderer, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, render: render, logger: logger}
}

var roles = []string{
	models.RoleAdmin,
	models.RoleOrganizer,
	models.RoleDelegate,
	models.RoleParticipant,
}

type userListData struct {
	Users []models.User
	Total int
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.users.List(r.Context())
	if err != nil {
		if clients.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.render.Render(w, http.StatusOK, "user_list.html", displayError(err), userListData{})
		return
	}
	h.render.Render(w, http.StatusOK, "user_list.html", "", userListData{Users: items, Total: total})
}

type userFormData struct {
	ID     int
	Form   models.UserForm
	Roles  []string
	Edit   bool
	Active bool
}

func (h *UserHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := userFormData{Form: models.UserForm{Role: models.RoleParticipant}, Roles: roles}
	h.render.Render(w, http.StatusOK, "user_form.html", "", data)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, data := parseUserForm(r, false)

	created, err := h.users.Create(r.Context(), form)
	if err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "user_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/users")
		return
	}
	h.logger.Info("user created", slog.Int("id", created.ID), slog.String("role", created.Role))
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		failureRedirect(w, r, err, "/users")
		return
	}

	active := u.Active
	data := userFormData{
		ID: u.ID,
		Form: models.UserForm{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Phone:     u.Phone,
			Role:      u.Role,
			Active:    &active,
		},
		Roles:  roles,
		Edit:   true,
		Active: u.Active,
	}
	h.render.Render(w, http.StatusOK, "user_form.html", "", data)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	form, data := parseUserForm(r, true)
	data.ID = id

	if _, err := h.users.Update(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "user_form.html", displayError(err), data)
			return
		}
		failureRedirect(w, r, err, "/users")
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *UserHandler) PasswordForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}
	h.render.Render(w, http.StatusOK, "user_password_form.html", "", userFormData{ID: id})
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	_ = r.ParseForm()
	form := models.ChangePasswordForm{Password: r.FormValue("password")}

	if err := h.users.ChangePassword(r.Context(), id, form); err != nil {
		if clients.IsValidation(err) {
			h.render.Render(w, http.StatusBadRequest, "user_password_form.html", displayError(err), userFormData{ID: id})
			return
		}
		failureRedirect(w, r, err, "/users")
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		failureRedirect(w, r, err, "/users")
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func parseUserForm(r *http.Request, edit bool) (models.UserForm, userFormData) {
	_ = r.ParseForm()
	form := models.UserForm{
		FirstName: formValue(r, "first_name"),
		LastName:  formValue(r, "last_name"),
		Email:     formValue(r, "email"),
		Phone:     formValue(r, "phone"),
		Role:      formValue(r, "role"),
	}
	data := userFormData{Form: form, Roles: roles, Edit: edit}
	if !edit {
		form.Password = r.FormValue("password")
	} else {
		active := r.FormValue("active") == "on"
		form.Active = &active
		data.Active = active
	}
	data.Form = form
	return form, data
}
