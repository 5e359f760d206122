package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mirrelia/inkwell/internal/blogservice"
	"github.com/mirrelia/inkwell/internal/common"
)

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.blogService.GetPosts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := app.newTemplateData(w, r)
	data.Posts = posts
	app.render(w, r, http.StatusOK, "home.html", data)
}

// renderPostPage loads the post and its comments and renders the post page
// with the given comment form and status.
func (app *application) renderPostPage(w http.ResponseWriter, r *http.Request, status int, id int, form *commentForm) {
	post, err := app.blogService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	comments, err := app.blogService.GetComments(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := app.newTemplateData(w, r)
	data.Post = post
	data.Comments = comments
	data.Form = form
	app.render(w, r, status, "post.html", data)
}

func (app *application) viewPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	app.renderPostPage(w, r, http.StatusOK, id, &commentForm{})
}

func (app *application) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := newCommentForm(r)
	if !form.Validate() {
		app.renderPostPage(w, r, http.StatusUnprocessableEntity, id, form)
		return
	}

	// A valid comment from an unauthenticated visitor is discarded, not
	// drafted.
	user := app.getUserContext(r)
	if user.IsAnonymous() {
		app.setFlash(w, "You need to login or register to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	_, err = app.blogService.AddComment(r.Context(), &blogservice.AddCommentRequest{
		Body:   form.Body,
		UserID: user.ID,
		PostID: id,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			form.FieldErrors = err.(common.ValidationError).Errors
			app.renderPostPage(w, r, http.StatusUnprocessableEntity, id, form)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.setFlash(w, "Your comment has been added.")
	http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
}

func (app *application) addPostFormHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData(w, r)
	data.Form = &postForm{}
	app.render(w, r, http.StatusOK, "editor.html", data)
}

func (app *application) addPostHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := newPostForm(r)
	if !form.Validate() {
		data := app.newTemplateData(w, r)
		data.Form = form
		app.render(w, r, http.StatusUnprocessableEntity, "editor.html", data)
		return
	}

	user := app.getUserContext(r)

	_, err = app.blogService.CreatePost(r.Context(), &blogservice.CreatePostRequest{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
		UserID:   user.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrDuplicateTitle):
			app.setFlash(w, "A post with that title already exists.")
			http.Redirect(w, r, "/add", http.StatusSeeOther)
		case errors.As(err, &common.ValidationError{}):
			form.FieldErrors = err.(common.ValidationError).Errors
			data := app.newTemplateData(w, r)
			data.Form = form
			app.render(w, r, http.StatusUnprocessableEntity, "editor.html", data)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) editPostFormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	post, err := app.blogService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	data := app.newTemplateData(w, r)
	data.Post = post
	data.Form = &postForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		ImageURL: post.ImageURL,
		Body:     post.Body,
	}
	app.render(w, r, http.StatusOK, "editor.html", data)
}

func (app *application) editPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	post, err := app.blogService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := newPostForm(r)
	// Title and date stay as created; only the mutable fields are checked
	// and written.
	form.Title = post.Title
	if !form.Validate() {
		data := app.newTemplateData(w, r)
		data.Post = post
		data.Form = form
		app.render(w, r, http.StatusUnprocessableEntity, "editor.html", data)
		return
	}

	_, err = app.blogService.UpdatePost(r.Context(), &blogservice.UpdatePostRequest{
		ID:       id,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			form.FieldErrors = err.(common.ValidationError).Errors
			data := app.newTemplateData(w, r)
			data.Post = post
			data.Form = form
			app.render(w, r, http.StatusUnprocessableEntity, "editor.html", data)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readQueryInt(r, "post_id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.blogService.DeletePost(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
