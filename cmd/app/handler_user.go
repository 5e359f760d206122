package main

import (
	"errors"
	"net/http"

	"github.com/mirrelia/inkwell/internal/common"
	"github.com/mirrelia/inkwell/internal/userservice"
)

func (app *application) registerFormHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(w, r)
	data.Form = &registerForm{}
	app.render(w, r, http.StatusOK, "register.html", data)
}

func (app *application) registerHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := newRegisterForm(r)
	if !form.Validate() {
		data := app.newTemplateData(w, r)
		data.Form = form
		app.render(w, r, http.StatusUnprocessableEntity, "register.html", data)
		return
	}

	_, session, err := app.userService.RegisterUser(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.setFlash(w, "You've already signed up with that email, log in instead!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.As(err, &common.ValidationError{}):
			form.FieldErrors = err.(common.ValidationError).Errors
			data := app.newTemplateData(w, r)
			data.Form = form
			app.render(w, r, http.StatusUnprocessableEntity, "register.html", data)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.setSessionCookie(w, session.Plain, int(userservice.SessionTokenTime.Seconds()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) loginFormHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(w, r)
	data.Form = &loginForm{}
	app.render(w, r, http.StatusOK, "login.html", data)
}

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := newLoginForm(r)
	if !form.Validate() {
		data := app.newTemplateData(w, r)
		data.Form = form
		app.render(w, r, http.StatusUnprocessableEntity, "login.html", data)
		return
	}

	// The two failure flashes deliberately reveal whether the account
	// exists, matching the established behavior of the site.
	_, session, err := app.userService.LoginUser(r.Context(), form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.setFlash(w, "That email does not exist, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, userservice.ErrInvalidCredentials):
			app.setFlash(w, "Password incorrect, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.As(err, &common.ValidationError{}):
			form.FieldErrors = err.(common.ValidationError).Errors
			data := app.newTemplateData(w, r)
			data.Form = form
			app.render(w, r, http.StatusUnprocessableEntity, "login.html", data)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.setSessionCookie(w, session.Plain, int(userservice.SessionTokenTime.Seconds()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserContext(r)

	err := app.userService.LogoutUser(r.Context(), user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
