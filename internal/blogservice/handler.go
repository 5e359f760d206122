package blogservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/mirrelia/inkwell/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreatePostRequest struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
	UserID   int
}

// CreatePost persists a new post stamped with the current date and the
// acting user as author.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateSubtitle(v, req.Subtitle)
	validateBody(v, req.Body)
	validateImageURL(v, req.ImageURL)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post := Post{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     sanitizeHTML(req.Body),
		ImageURL: req.ImageURL,
		Date:     time.Now().Format(DateFormat),
		UserID:   req.UserID,
	}

	err := s.m.insertPost(ctx, &post)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// GetPostByID returns a post by its ID.
func (s *BlogService) GetPostByID(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getPostById(ctx, id)
}

// GetPosts returns all posts in ascending creation order.
func (s *BlogService) GetPosts(ctx context.Context) ([]Post, error) {
	return s.m.getPosts(ctx)
}

type UpdatePostRequest struct {
	ID       int
	Subtitle string
	Body     string
	ImageURL string
}

// UpdatePost mutates the post's subtitle, body, and image URL. Title and
// creation date are left untouched.
func (s *BlogService) UpdatePost(ctx context.Context, req *UpdatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, req.ID, "id")
	validateSubtitle(v, req.Subtitle)
	validateBody(v, req.Body)
	validateImageURL(v, req.ImageURL)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post := Post{
		ID:       req.ID,
		Subtitle: req.Subtitle,
		Body:     sanitizeHTML(req.Body),
		ImageURL: req.ImageURL,
	}

	err := s.m.updatePost(ctx, &post)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost removes a post and, through the schema cascade, its comments.
func (s *BlogService) DeletePost(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deletePost(ctx, id)
}

type AddCommentRequest struct {
	Body   string
	UserID int
	PostID int
}

// AddComment appends a comment to a post in a single insert statement.
func (s *BlogService) AddComment(ctx context.Context, req *AddCommentRequest) (*Comment, error) {
	v := common.NewValidator()
	validateBody(v, req.Body)
	validateInt(v, req.UserID, "user_id")
	validateInt(v, req.PostID, "post_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	comment := Comment{
		Body:   sanitizeHTML(req.Body),
		Date:   time.Now().Format(DateFormat),
		UserID: req.UserID,
		PostID: req.PostID,
	}

	err := s.m.insertComment(ctx, &comment)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// GetComments returns a post's comments oldest first.
func (s *BlogService) GetComments(ctx context.Context, postID int) ([]Comment, error) {
	v := common.NewValidator()
	validateInt(v, postID, "post_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getCommentsByPostId(ctx, postID)
}
