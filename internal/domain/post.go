package domain

import (
	"context"
	"time"
)

// Like holds one account reference; at most one entry per account may exist
// in a post's likes list. The invariant is enforced by the post usecase.
type Like struct {
	AccountID string `json:"user"`
}

type Comment struct {
	ID        string    `json:"id"`
	AccountID string    `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Body      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Post snapshots the author's name and avatar at creation time; later
// account edits do not change existing posts.
type Post struct {
	ID        string    `json:"id"`
	AccountID string    `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Body      string    `json:"text"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByAccountID(ctx context.Context, accountID string) error
	UpdateLikes(ctx context.Context, postID string, likes []Like) error
	UpdateComments(ctx context.Context, postID string, comments []Comment) error
}

type PostUsecase interface {
	Create(ctx context.Context, accountID, text string) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	Delete(ctx context.Context, accountID, postID string) error
	Like(ctx context.Context, accountID, postID string) ([]Like, error)
	Unlike(ctx context.Context, accountID, postID string) ([]Like, error)
	AddComment(ctx context.Context, accountID, postID, text string) (*Post, error)
	RemoveComment(ctx context.Context, accountID, postID, commentID string) ([]Comment, error)
}
