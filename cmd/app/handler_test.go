package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrelia/inkwell/internal/blogservice"
)

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.get(t, "/healthcheck")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status": "available"`)
	assert.Contains(t, body, `"environment": "test"`)
}

func TestHomeEmpty(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.get(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No posts yet.")
}

func TestRegisterLoginPostFlow(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	// Registration signs the user in straight away.
	status, header, _ := ts.postForm(t, "/register", url.Values{
		"name":     {"Alice"},
		"email":    {"a@x.com"},
		"password": {"pw1"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	// Round-trip the session: log out, then log back in.
	status, header, _ = ts.get(t, "/logout")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	status, header, _ = ts.postForm(t, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"pw1"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	status, header, _ = ts.postForm(t, "/add", url.Values{
		"title":     {"T1"},
		"subtitle":  {"S"},
		"body":      {"B"},
		"image_url": {"http://i"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	status, _, body := ts.get(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "T1")
	assert.Contains(t, body, "Posted by Alice")
	assert.NotContains(t, body, "No posts yet.")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	ts.register(t, "Alice", "a@x.com", "pw1")

	status, header, _ := ts.postForm(t, "/register", url.Values{
		"name":     {"Mallory"},
		"email":    {"a@x.com"},
		"password": {"other"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login", header.Get("Location"))

	// The flash survives exactly one redirect.
	_, _, body := ts.get(t, "/login")
	assert.Contains(t, body, "You&#39;ve already signed up with that email, log in instead!")

	_, _, body = ts.get(t, "/login")
	assert.NotContains(t, body, "log in instead!")
}

func TestLoginFailureFlashes(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	ts.register(t, "Alice", "a@x.com", "pw1")
	ts.get(t, "/logout")

	tests := []struct {
		name  string
		form  url.Values
		flash string
	}{
		{
			name:  "unknown email",
			form:  url.Values{"email": {"nobody@x.com"}, "password": {"pw1"}},
			flash: "That email does not exist, please try again.",
		},
		{
			name:  "wrong password",
			form:  url.Values{"email": {"a@x.com"}, "password": {"wrong"}},
			flash: "Password incorrect, please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, header, _ := ts.postForm(t, "/login", tt.form)
			assert.Equal(t, http.StatusSeeOther, status)
			assert.Equal(t, "/login", header.Get("Location"))

			_, _, body := ts.get(t, "/login")
			assert.Contains(t, body, tt.flash)
		})
	}
}

func TestViewPostNotFound(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, _ := ts.get(t, "/post/999")
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = ts.get(t, "/post/abc")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAddComment(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	ts.register(t, "Alice", "a@x.com", "pw1")
	ts.postForm(t, "/add", url.Values{
		"title":     {"T1"},
		"subtitle":  {"S"},
		"body":      {"B"},
		"image_url": {"http://i"},
	})

	status, header, _ := ts.postForm(t, "/post/1", url.Values{
		"body": {"Nice one"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/post/1", header.Get("Location"))

	_, _, body := ts.get(t, "/post/1")
	assert.Contains(t, body, "Your comment has been added.")
	assert.Contains(t, body, "Nice one")

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddCommentUnauthenticated(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	post := seedPost(t, app, "T1")

	status, header, _ := ts.postForm(t, fmt.Sprintf("/post/%d", post.ID), url.Values{
		"body": {"Nice one"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login", header.Get("Location"))

	_, _, body := ts.get(t, "/login")
	assert.Contains(t, body, "You need to login or register to comment.")

	// The comment was discarded, not drafted.
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAddCommentEmptyBody(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	post := seedPost(t, app, "T1")

	status, _, body := ts.postForm(t, fmt.Sprintf("/post/%d", post.ID), url.Values{
		"body": {""},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "must be provided")
}

func TestEditPostKeepsTitleAndDate(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	ts.register(t, "Alice", "a@x.com", "pw1")
	ts.postForm(t, "/add", url.Values{
		"title":     {"T1"},
		"subtitle":  {"S"},
		"body":      {"B"},
		"image_url": {"http://i"},
	})

	var dateBefore string
	err := db.QueryRow("SELECT date FROM posts WHERE id = 1").Scan(&dateBefore)
	require.NoError(t, err)

	// The submitted title is ignored; only the mutable fields change.
	status, header, _ := ts.postForm(t, "/edit/1", url.Values{
		"title":     {"Hijacked"},
		"subtitle":  {"S2"},
		"body":      {"B2"},
		"image_url": {"http://i2"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/post/1", header.Get("Location"))

	var title, subtitle, date string
	err = db.QueryRow("SELECT title, subtitle, date FROM posts WHERE id = 1").Scan(&title, &subtitle, &date)
	require.NoError(t, err)
	assert.Equal(t, "T1", title)
	assert.Equal(t, "S2", subtitle)
	assert.Equal(t, dateBefore, date)
}

func TestDeletePost(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	ts.register(t, "Alice", "a@x.com", "pw1")
	ts.postForm(t, "/add", url.Values{
		"title":     {"T1"},
		"subtitle":  {"S"},
		"body":      {"B"},
		"image_url": {"http://i"},
	})

	status, header, _ := ts.get(t, "/delete?post_id=1")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	status, _, _ = ts.get(t, "/delete?post_id=1")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestContactFormRendered(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.get(t, "/contact")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Contact")
}

func TestContactMailFailure(t *testing.T) {
	// The test config points at a closed SMTP port, so the synchronous send
	// fails and the page reports it.
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.postForm(t, "/contact", url.Values{
		"name":    {"Bob"},
		"email":   {"bob@example.com"},
		"phone":   {"555-0100"},
		"message": {"Hello there"},
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Your message could not be sent, please try again later.")
}

// seedPost creates an author and a post directly through the services,
// without leaving a session in the test client's jar.
func seedPost(t *testing.T, app *application, title string) *blogservice.Post {
	ctx := context.Background()

	user, _, err := app.userService.RegisterUser(ctx, "Author", "author@example.com", "password")
	require.NoError(t, err)

	post, err := app.blogService.CreatePost(ctx, &blogservice.CreatePostRequest{
		Title:    title,
		Subtitle: "S",
		Body:     "B",
		ImageURL: "http://i",
		UserID:   user.ID,
	})
	require.NoError(t, err)

	return post
}
