package main

import (
	"net/http"

	"github.com/mirrelia/inkwell/internal/mailservice"
)

func (app *application) aboutHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(w, r)
	app.render(w, r, http.StatusOK, "about.html", data)
}

func (app *application) contactFormHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(w, r)
	data.Form = &contactForm{}
	app.render(w, r, http.StatusOK, "contact.html", data)
}

func (app *application) contactHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := newContactForm(r)
	if !form.Validate() {
		data := app.newTemplateData(w, r)
		data.Form = form
		app.render(w, r, http.StatusUnprocessableEntity, "contact.html", data)
		return
	}

	err = app.mailService.SendContactMessage(&mailservice.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
	})
	if err != nil {
		// Relay failures are non-fatal; the visitor just sees that the
		// message did not go out.
		data := app.newTemplateData(w, r)
		data.Form = form
		data.Flash = "Your message could not be sent, please try again later."
		app.render(w, r, http.StatusOK, "contact.html", data)
		return
	}

	data := app.newTemplateData(w, r)
	data.Form = &contactForm{}
	data.MsgSent = true
	app.render(w, r, http.StatusOK, "contact.html", data)
}
