package blogservice

import (
	"context"
)

func (m *BlogModel) insertComment(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (body, date, user_id, post_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	args := []any{comment.Body, comment.Date, comment.UserID, comment.PostID}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		switch {
		case ForeignKeyError(err, "comments_post_id_fkey"):
			return ErrRecordNotFound
		case ForeignKeyError(err, "comments_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// getCommentsByPostId returns a post's comments oldest first, joining users
// for the author's name and email.
func (m *BlogModel) getCommentsByPostId(ctx context.Context, postID int) ([]Comment, error) {
	query := `
		SELECT c.id, c.body, c.date, c.user_id, c.post_id, c.created_at, u.name, u.email
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := m.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var comment Comment
		err := rows.Scan(&comment.ID, &comment.Body, &comment.Date, &comment.UserID, &comment.PostID, &comment.CreatedAt, &comment.AuthorName, &comment.AuthorEmail)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
