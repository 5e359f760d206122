package main

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuthRedirects(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	paths := []string{"/add", "/edit/1", "/logout", "/delete?post_id=1"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			status, header, _ := ts.get(t, path)
			assert.Equal(t, http.StatusSeeOther, status)
			assert.Equal(t, "/login", header.Get("Location"))
		})
	}
}

func TestStaleSessionCookieCleared(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"})

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	// The visitor is served as anonymous and the dead cookie is expired.
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var cleared bool
	for _, c := range res.Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected an expiring %s cookie", sessionCookieName)
}

func TestRateLimit(t *testing.T) {
	// The limiter sits in front of the router, so no database is needed.
	app := &application{
		config: &Config{
			Environment:      "test",
			RateLimitEnabled: true,
			RateLimitRPS:     2,
			RateLimitBurst:   4,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	ts := newTestServer(t, app.routes())

	var last int
	for i := 0; i < 5; i++ {
		last, _, _ = ts.get(t, "/healthcheck")
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestRecoverPanic(t *testing.T) {
	app := &application{
		config: &Config{Environment: "test"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	handler := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	ts := newTestServer(t, handler)

	status, header, body := ts.get(t, "/")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "close", header.Get("Connection"))
	assert.True(t, strings.Contains(body, "the server encountered a problem"))
}
