package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/PhatNguyen203/DevConnecting/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	likesJSON, err := json.Marshal(post.Likes)
	if err != nil {
		return err
	}
	commentsJSON, err := json.Marshal(post.Comments)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (id, account_id, name, avatar_url, body, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.Exec(ctx, query,
		post.ID, post.AccountID, post.Name, post.AvatarURL, post.Body,
		likesJSON, commentsJSON, post.CreatedAt,
	)
	return err
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT id, account_id, name, avatar_url, body, likes, comments, created_at
	          FROM posts WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// ListAll returns every post, newest first.
func (r *postRepo) ListAll(ctx context.Context) ([]domain.Post, error) {
	query := `SELECT id, account_id, name, avatar_url, body, likes, comments, created_at
	          FROM posts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *postRepo) DeleteByAccountID(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE account_id = $1`, accountID)
	return err
}

// UpdateLikes replaces the likes list in one single-row UPDATE so the
// nested-collection write is atomic per aggregate.
func (r *postRepo) UpdateLikes(ctx context.Context, postID string, likes []domain.Like) error {
	likesJSON, err := json.Marshal(likes)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `UPDATE posts SET likes = $2 WHERE id = $1`, postID, likesJSON)
	return err
}

func (r *postRepo) UpdateComments(ctx context.Context, postID string, comments []domain.Comment) error {
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `UPDATE posts SET comments = $2 WHERE id = $1`, postID, commentsJSON)
	return err
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var likesJSON, commentsJSON []byte

	err := row.Scan(
		&p.ID, &p.AccountID, &p.Name, &p.AvatarURL, &p.Body,
		&likesJSON, &commentsJSON, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(likesJSON) > 0 {
		if err := json.Unmarshal(likesJSON, &p.Likes); err != nil {
			return nil, err
		}
	}
	if len(commentsJSON) > 0 {
		if err := json.Unmarshal(commentsJSON, &p.Comments); err != nil {
			return nil, err
		}
	}
	if p.Likes == nil {
		p.Likes = []domain.Like{}
	}
	if p.Comments == nil {
		p.Comments = []domain.Comment{}
	}
	return &p, nil
}
