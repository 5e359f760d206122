package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

const (
	sessionCookieName = "session_token"
	flashCookieName   = "flash"
)

func (app *application) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   app.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (app *application) getSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// sign computes an HMAC-SHA256 tag over msg with the configured session
// secret.
func (app *application) sign(msg string) string {
	mac := hmac.New(sha256.New, []byte(app.config.SessionSecret))
	mac.Write([]byte(msg))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// setFlash stores a one-shot, tamper-evident notice that survives a single
// redirect.
func (app *application) setFlash(w http.ResponseWriter, message string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded + "." + app.sign(encoded),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// getFlash pops the flash message, if any. A cookie with a bad signature is
// discarded silently.
func (app *application) getFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	encoded, tag, found := strings.Cut(cookie.Value, ".")
	if !found {
		return ""
	}

	if !hmac.Equal([]byte(tag), []byte(app.sign(encoded))) {
		return ""
	}

	message, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}

	return string(message)
}
