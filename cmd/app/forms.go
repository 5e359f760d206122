package main

import (
	"net/http"

	"github.com/mirrelia/inkwell/internal/common"
)

// Each form is an explicit typed structure bound from the submitted values.
// Validate populates FieldErrors and reports whether the form is clean; it
// is re-run on every submission and has no side effects.

type registerForm struct {
	Email       string
	Password    string
	Name        string
	FieldErrors map[string]string
}

func newRegisterForm(r *http.Request) *registerForm {
	return &registerForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Name:     r.PostForm.Get("name"),
	}
}

func (f *registerForm) Validate() bool {
	v := common.NewValidator()
	v.Check(f.Email != "", "email", "must be provided")
	v.Check(f.Email == "" || v.CheckEmail(f.Email), "email", "must be a valid email address")
	v.Check(f.Password != "", "password", "must be provided")
	v.Check(f.Name != "", "name", "must be provided")
	f.FieldErrors = v.Errors
	return v.Valid()
}

type loginForm struct {
	Email       string
	Password    string
	FieldErrors map[string]string
}

func newLoginForm(r *http.Request) *loginForm {
	return &loginForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
}

func (f *loginForm) Validate() bool {
	v := common.NewValidator()
	v.Check(f.Email != "", "email", "must be provided")
	v.Check(f.Email == "" || v.CheckEmail(f.Email), "email", "must be a valid email address")
	v.Check(f.Password != "", "password", "must be provided")
	f.FieldErrors = v.Errors
	return v.Valid()
}

type postForm struct {
	Title       string
	Subtitle    string
	ImageURL    string
	Body        string
	FieldErrors map[string]string
}

func newPostForm(r *http.Request) *postForm {
	return &postForm{
		Title:    r.PostForm.Get("title"),
		Subtitle: r.PostForm.Get("subtitle"),
		ImageURL: r.PostForm.Get("image_url"),
		Body:     r.PostForm.Get("body"),
	}
}

func (f *postForm) Validate() bool {
	v := common.NewValidator()
	v.Check(f.Title != "", "title", "must be provided")
	v.Check(f.Subtitle != "", "subtitle", "must be provided")
	v.Check(f.ImageURL != "", "image_url", "must be provided")
	v.Check(f.Body != "", "body", "must be provided")
	f.FieldErrors = v.Errors
	return v.Valid()
}

type commentForm struct {
	Body        string
	FieldErrors map[string]string
}

func newCommentForm(r *http.Request) *commentForm {
	return &commentForm{
		Body: r.PostForm.Get("body"),
	}
}

func (f *commentForm) Validate() bool {
	v := common.NewValidator()
	v.Check(f.Body != "", "body", "must be provided")
	f.FieldErrors = v.Errors
	return v.Valid()
}

type contactForm struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	FieldErrors map[string]string
}

func newContactForm(r *http.Request) *contactForm {
	return &contactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Message: r.PostForm.Get("message"),
	}
}

func (f *contactForm) Validate() bool {
	v := common.NewValidator()
	v.Check(f.Name != "", "name", "must be provided")
	v.Check(f.Email != "", "email", "must be provided")
	v.Check(f.Email == "" || v.CheckEmail(f.Email), "email", "must be a valid email address")
	v.Check(f.Message != "", "message", "must be provided")
	f.FieldErrors = v.Errors
	return v.Valid()
}
