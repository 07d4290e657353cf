package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"

	"github.com/google/uuid"
)

type postUsecase struct {
	posts    domain.PostRepository
	accounts domain.AccountRepository
}

func NewPostUsecase(posts domain.PostRepository, accounts domain.AccountRepository) domain.PostUsecase {
	return &postUsecase{
		posts:    posts,
		accounts: accounts,
	}
}

// Create snapshots the author's current name and avatar into the post.
func (u *postUsecase) Create(ctx context.Context, accountID, text string) (*domain.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation([]string{"text is required"})
	}

	account, err := u.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if account == nil {
		return nil, apperror.NotFound("account not found")
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Name:      account.Name,
		AvatarURL: account.AvatarURL,
		Body:      text,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	return post, nil
}

func (u *postUsecase) ListAll(ctx context.Context) ([]domain.Post, error) {
	posts, err := u.posts.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return posts, nil
}

func (u *postUsecase) Get(ctx context.Context, id string) (*domain.Post, error) {
	// A malformed id and an absent post are the same outward result.
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NotFound("post not found")
	}
	post, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if post == nil {
		return nil, apperror.NotFound("post not found")
	}
	return post, nil
}

// Delete checks existence before ownership; only the author may delete.
func (u *postUsecase) Delete(ctx context.Context, accountID, postID string) error {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.AccountID != accountID {
		return apperror.Forbidden("not authorized to delete this post")
	}
	if err := u.posts.Delete(ctx, postID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Like appends one like per account. A second like from the same account is
// rejected with a conflict, not silently accepted.
func (u *postUsecase) Like(ctx context.Context, accountID, postID string) ([]domain.Like, error) {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, like := range post.Likes {
		if like.AccountID == accountID {
			return nil, apperror.Conflict("post already liked")
		}
	}

	likes := append(post.Likes, domain.Like{AccountID: accountID})
	if err := u.posts.UpdateLikes(ctx, postID, likes); err != nil {
		return nil, apperror.Internal(err)
	}
	return likes, nil
}

func (u *postUsecase) Unlike(ctx context.Context, accountID, postID string) ([]domain.Like, error) {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, like := range post.Likes {
		if like.AccountID == accountID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.Conflict("post has not yet been liked")
	}

	likes := append(post.Likes[:idx], post.Likes[idx+1:]...)
	if err := u.posts.UpdateLikes(ctx, postID, likes); err != nil {
		return nil, apperror.Internal(err)
	}
	return likes, nil
}

func (u *postUsecase) AddComment(ctx context.Context, accountID, postID, text string) (*domain.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation([]string{"text is required"})
	}

	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	account, err := u.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if account == nil {
		return nil, apperror.NotFound("account not found")
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Name:      account.Name,
		AvatarURL: account.AvatarURL,
		Body:      text,
		CreatedAt: time.Now().UTC(),
	}
	comments := append(post.Comments, comment)

	if err := u.posts.UpdateComments(ctx, postID, comments); err != nil {
		return nil, apperror.Internal(err)
	}
	post.Comments = comments
	return post, nil
}

// RemoveComment locates the comment by its own id, never by author, so two
// comments from the same account cannot collide.
func (u *postUsecase) RemoveComment(ctx context.Context, accountID, postID, commentID string) ([]domain.Comment, error) {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NotFound("comment not found")
	}
	if post.Comments[idx].AccountID != accountID {
		return nil, apperror.Forbidden("not authorized to delete this comment")
	}

	comments := append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := u.posts.UpdateComments(ctx, postID, comments); err != nil {
		return nil, apperror.Internal(err)
	}
	return comments, nil
}
