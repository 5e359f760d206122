package main

import (
	"crypto/md5"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mirrelia/inkwell/internal/blogservice"
	"github.com/mirrelia/inkwell/internal/userservice"
)

//go:embed ui
var uiFS embed.FS

type templateCache map[string]*template.Template

// templateData carries everything a page render can need. The current user
// is resolved per request and passed explicitly, never read from a global.
type templateData struct {
	IsAuthenticated bool
	CurrentUser     *userservice.User
	Flash           string
	Form            any
	Post            *blogservice.Post
	Posts           []blogservice.Post
	Comments        []blogservice.Comment
	MsgSent         bool
}

var templateFuncs = template.FuncMap{
	// safeHTML marks a sanitized rich-text body as renderable HTML.
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s)
	},
	// avatarURL builds a gravatar URL for a commenter's email.
	"avatarURL": func(email string) string {
		hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
		return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=100&d=retro&r=g", hash)
	},
}

// newTemplateCache parses every page template against the base layout once
// at startup.
func newTemplateCache() (templateCache, error) {
	cache := templateCache{}

	pages, err := fs.Glob(uiFS, "ui/html/pages/*.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(templateFuncs).ParseFS(uiFS, "ui/html/base.html", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}
