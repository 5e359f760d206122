package main

import (
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	static, _ := fs.Sub(uiFS, "ui/static")
	router.Handler(http.MethodGet, "/static/*filepath", http.StripPrefix("/static", http.FileServer(http.FS(static))))

	router.HandlerFunc(http.MethodGet, "/", app.homeHandler)
	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// user service
	router.HandlerFunc(http.MethodGet, "/register", app.registerFormHandler)
	router.HandlerFunc(http.MethodPost, "/register", app.registerHandler)
	router.HandlerFunc(http.MethodGet, "/login", app.loginFormHandler)
	router.HandlerFunc(http.MethodPost, "/login", app.loginHandler)
	router.HandlerFunc(http.MethodGet, "/logout", app.requireAuthUser(app.logoutHandler))

	// blog service
	router.HandlerFunc(http.MethodGet, "/post/:id", app.viewPostHandler)
	router.HandlerFunc(http.MethodPost, "/post/:id", app.addCommentHandler)
	router.HandlerFunc(http.MethodGet, "/add", app.requireAuthUser(app.addPostFormHandler))
	router.HandlerFunc(http.MethodPost, "/add", app.requireAuthUser(app.addPostHandler))
	router.HandlerFunc(http.MethodGet, "/edit/:id", app.requireAuthUser(app.editPostFormHandler))
	router.HandlerFunc(http.MethodPost, "/edit/:id", app.requireAuthUser(app.editPostHandler))
	router.HandlerFunc(http.MethodGet, "/delete", app.requireAuthUser(app.deletePostHandler))

	// static pages and contact form
	router.HandlerFunc(http.MethodGet, "/about", app.aboutHandler)
	router.HandlerFunc(http.MethodGet, "/contact", app.contactFormHandler)
	router.HandlerFunc(http.MethodPost, "/contact", app.contactHandler)

	return app.recoverPanic(app.rateLimit(app.logRequest(app.authenticate(router))))
}
