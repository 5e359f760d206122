package blogservice

import (
	"database/sql"
	"time"
)

// DateFormat is the display-date layout stamped onto posts and comments at
// creation. It is stored as text and never rewritten.
const DateFormat = "January 02, 2006"

type Post struct {
	ID       int
	Title    string
	Subtitle string
	// Body is rich text (sanitized HTML).
	Body       string
	ImageURL   string
	Date       string
	UserID     int
	AuthorName string
	CreatedAt  time.Time
}

type Comment struct {
	ID          int
	Body        string
	Date        string
	UserID      int
	AuthorName  string
	AuthorEmail string
	PostID      int
	CreatedAt   time.Time
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
