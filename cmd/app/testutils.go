package main

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mirrelia/inkwell/internal/blogservice"
	"github.com/mirrelia/inkwell/internal/common"
	"github.com/mirrelia/inkwell/internal/mailservice"
	"github.com/mirrelia/inkwell/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	templates, err := newTemplateCache()
	if err != nil {
		t.Fatalf("could not parse templates: %v", err)
	}

	cfg := &Config{
		Port:          ":0",
		Environment:   "test",
		SessionSecret: "test-secret-key",
		MailHost:      "localhost",
		MailPort:      2525,
		MailUser:      "operator@example.com",
		MailPassword:  "password",
		MailSender:    "Inkwell <operator@example.com>",
		AdminEmail:    "operator@example.com",
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, common.NewCache(5*time.Minute, 10*time.Minute)),
		blogService: blogservice.NewBlogService(db),
		mailService: mailservice.NewMailService(cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.AdminEmail, cfg.MailPort, logger),
		templates:   templates,
	}

	return app, db
}

// newTestServer wraps httptest with a cookie jar so login sessions persist
// across requests. Redirects are not followed; tests assert on them.
func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	ts.Client().Jar = jar
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, string) {
	res, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, string(body)
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) (int, http.Header, string) {
	res, err := ts.Client().Post(ts.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, string(body)
}

// register signs up a user through the real handler, leaving its session
// cookie in the jar.
func (ts *testServer) register(t *testing.T, name, email, password string) {
	status, _, _ := ts.postForm(t, "/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	if status != http.StatusSeeOther {
		t.Fatalf("registration failed with status %d", status)
	}
}
