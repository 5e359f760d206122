package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateTitle = errors.New("duplicate title")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// UniqueKeyError is a helper function to check if the error is a unique constraint error.
func UniqueKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *BlogModel) insertPost(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (title, subtitle, body, image_url, date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	args := []any{post.Title, post.Subtitle, post.Body, post.ImageURL, post.Date, post.UserID}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		switch {
		case UniqueKeyError(err, "posts_title_key"):
			return ErrDuplicateTitle
		case ForeignKeyError(err, "posts_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// getPostById gets a post by its ID joining the users table for the author's name.
func (m *BlogModel) getPostById(ctx context.Context, id int) (*Post, error) {
	query := `
		SELECT p.id, p.title, p.subtitle, p.body, p.image_url, p.date, p.user_id, p.created_at, u.name
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	row := m.db.QueryRowContext(ctx, query, id)

	var post Post
	err := row.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Body, &post.ImageURL, &post.Date, &post.UserID, &post.CreatedAt, &post.AuthorName)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &post, nil
}

// getPosts returns every post ordered by creation time ascending, oldest
// first, matching the front-page reading order.
func (m *BlogModel) getPosts(ctx context.Context) ([]Post, error) {
	query := `
		SELECT p.id, p.title, p.subtitle, p.body, p.image_url, p.date, p.user_id, p.created_at, u.name
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at ASC, p.id ASC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Body, &post.ImageURL, &post.Date, &post.UserID, &post.CreatedAt, &post.AuthorName)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// updatePost mutates subtitle, body, and image URL only. Title and date are
// immutable after creation.
func (m *BlogModel) updatePost(ctx context.Context, post *Post) error {
	query := `
		UPDATE posts
		SET subtitle = $1, body = $2, image_url = $3
		WHERE id = $4
		RETURNING title, date, created_at`

	err := m.db.QueryRowContext(ctx, query, post.Subtitle, post.Body, post.ImageURL, post.ID).Scan(&post.Title, &post.Date, &post.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

// deletePost removes the post; its comments go with it via the cascade on
// comments.post_id.
func (m *BlogModel) deletePost(ctx context.Context, id int) error {
	query := `
		DELETE FROM posts
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
