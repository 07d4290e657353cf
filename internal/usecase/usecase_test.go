package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/internal/usecase"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"
	"github.com/PhatNguyen203/DevConnecting/pkg/hash"
	"github.com/PhatNguyen203/DevConnecting/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) ReplaceByAccountID(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) UpdateExperience(ctx context.Context, profileID string, list []domain.Experience) error {
	return m.Called(ctx, profileID, list).Error(0)
}
func (m *MockProfileRepo) UpdateEducation(ctx context.Context, profileID string, list []domain.Education) error {
	return m.Called(ctx, profileID, list).Error(0)
}
func (m *MockProfileRepo) DeleteByAccountID(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
func (m *MockPostRepo) ListAll(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}
func (m *MockPostRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockPostRepo) DeleteByAccountID(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}
func (m *MockPostRepo) UpdateLikes(ctx context.Context, postID string, likes []domain.Like) error {
	return m.Called(ctx, postID, likes).Error(0)
}
func (m *MockPostRepo) UpdateComments(ctx context.Context, postID string, comments []domain.Comment) error {
	return m.Called(ctx, postID, comments).Error(0)
}

func testTokens() *token.Service {
	return token.NewService("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockAccounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(mockAccounts, testTokens())

		mockAccounts.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.Account{ID: "a1", Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), "John", "taken@example.com", "secret123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Should normalize email and hash password", func(t *testing.T) {
		mockAccounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(mockAccounts, testTokens())

		mockAccounts.On("GetByEmail", mock.Anything, "john@example.com").Return(nil, nil)
		mockAccounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).
			Return(nil).Run(func(args mock.Arguments) {
			account := args.Get(1).(*domain.Account)
			assert.Equal(t, "john@example.com", account.Email)
			assert.NotEqual(t, "secret123", account.Password)
			assert.True(t, hash.Matches(account.Password, "secret123"))
			assert.Contains(t, account.AvatarURL, "gravatar.com/avatar/")
		})

		credential, err := uc.Register(context.Background(), "John", "  John@Example.COM ", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, credential)
		mockAccounts.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	hashed, _ := hash.Password("secret123")
	account := &domain.Account{ID: uuid.NewString(), Email: "john@example.com", Password: hashed}

	t.Run("Should return credential bound to the account", func(t *testing.T) {
		mockAccounts := new(MockAccountRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockAccounts, tokens)

		mockAccounts.On("GetByEmail", mock.Anything, "john@example.com").Return(account, nil)

		credential, err := uc.Login(context.Background(), "john@example.com", "secret123")
		assert.NoError(t, err)

		id, err := tokens.Verify(credential)
		assert.NoError(t, err)
		assert.Equal(t, account.ID, id)
	})

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockAccounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(mockAccounts, testTokens())

		mockAccounts.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
		mockAccounts.On("GetByEmail", mock.Anything, "john@example.com").Return(account, nil)

		_, errUnknown := uc.Login(context.Background(), "nobody@example.com", "secret123")
		_, errWrongPass := uc.Login(context.Background(), "john@example.com", "wrongpass")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}

func TestProfileUpsert(t *testing.T) {
	accountID := uuid.NewString()

	t.Run("Should fail when status or skills are missing", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		_, err := uc.Upsert(context.Background(), accountID, domain.ProfileFields{Skills: " , ,"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.NotEmpty(t, appErr.Fields)
	})

	t.Run("Should report only the field that is missing", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		_, err := uc.Upsert(context.Background(), accountID, domain.ProfileFields{Status: "Developer"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{"skills is required"}, appErr.Fields)
	})

	t.Run("Should split and trim the skills list", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		stored := &domain.Profile{ID: uuid.NewString(), AccountID: accountID, Status: "Developer"}
		// First read finds nothing, the re-read after Create returns the row.
		mockProfiles.On("GetByAccountID", mock.Anything, accountID).Return(nil, nil).Once()
		mockProfiles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).
			Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, []string{"Go", "SQL", "Redis"}, p.Skills)
			assert.Empty(t, p.Experience)
			assert.Empty(t, p.Education)
		})
		mockProfiles.On("GetByAccountID", mock.Anything, accountID).Return(stored, nil)

		profile, err := uc.Upsert(context.Background(), accountID, domain.ProfileFields{
			Status: "Developer",
			Skills: " Go, SQL ,,Redis ",
		})
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, profile.ID)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("Should replace in place when a profile already exists", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		existing := &domain.Profile{ID: uuid.NewString(), AccountID: accountID, Status: "Old"}
		mockProfiles.On("GetByAccountID", mock.Anything, accountID).Return(existing, nil)
		mockProfiles.On("ReplaceByAccountID", mock.Anything, mock.AnythingOfType("*domain.Profile")).
			Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, existing.ID, p.ID)
			assert.Equal(t, "Senior Developer", p.Status)
		})

		_, err := uc.Upsert(context.Background(), accountID, domain.ProfileFields{
			Status: "Senior Developer",
			Skills: "Go",
		})
		assert.NoError(t, err)
		mockProfiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProfileLookup(t *testing.T) {
	t.Run("Should treat a malformed account id as not found", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		_, err := uc.GetByAccount(context.Background(), "not-a-uuid")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		mockProfiles.AssertNotCalled(t, "GetByAccountID", mock.Anything, mock.Anything)
	})
}

func TestDeleteOwnCascade(t *testing.T) {
	accountID := uuid.NewString()

	mockProfiles := new(MockProfileRepo)
	mockAccounts := new(MockAccountRepo)
	mockPosts := new(MockPostRepo)
	uc := usecase.NewProfileUsecase(mockProfiles, mockAccounts, mockPosts)

	mockPosts.On("DeleteByAccountID", mock.Anything, accountID).Return(nil)
	mockProfiles.On("DeleteByAccountID", mock.Anything, accountID).Return(nil)
	mockAccounts.On("Delete", mock.Anything, accountID).Return(nil)

	err := uc.DeleteOwn(context.Background(), accountID)
	assert.NoError(t, err)
	mockPosts.AssertExpectations(t)
	mockProfiles.AssertExpectations(t)
	mockAccounts.AssertExpectations(t)
}

func TestExperienceCollection(t *testing.T) {
	accountID := uuid.NewString()
	profileID := uuid.NewString()

	baseProfile := func() *domain.Profile {
		return &domain.Profile{
			ID:        profileID,
			AccountID: accountID,
			Experience: []domain.Experience{
				{ID: "exp1", Title: "Engineer", Company: "Acme", From: "2020-01-01"},
				{ID: "exp2", Title: "Lead", Company: "Globex", From: "2022-06-01"},
			},
		}
	}

	t.Run("Should append new entries at the end with a fresh id", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		mockProfiles.On("GetByAccountID", mock.Anything, accountID).Return(baseProfile(), nil)
		mockProfiles.On("UpdateExperience", mock.Anything, profileID, mock.Anything).Return(nil)

		profile, err := uc.AddExperience(context.Background(), accountID, domain.ExperienceFields{
			Title: "Architect", Company: "Initech", From: "2024-03-01",
		})
		assert.NoError(t, err)
		assert.Len(t, profile.Experience, 3)
		assert.Equal(t, "Architect", profile.Experience[2].Title)
		assert.NotEmpty(t, profile.Experience[2].ID)
	})

	t.Run("Should remove exactly the entry with the given id", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		mockProfiles.On("GetByAccountID", mock.Anything, accountID).Return(baseProfile(), nil)
		mockProfiles.On("UpdateExperience", mock.Anything, profileID, mock.Anything).Return(nil)

		profile, err := uc.RemoveExperience(context.Background(), accountID, "exp1")
		assert.NoError(t, err)
		assert.Len(t, profile.Experience, 1)
		assert.Equal(t, "exp2", profile.Experience[0].ID)
	})

	t.Run("Should leave the profile unchanged for an unknown entry id", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		mockProfiles.On("GetByAccountID", mock.Anything, accountID).Return(baseProfile(), nil)

		profile, err := uc.RemoveExperience(context.Background(), accountID, "unknown")
		assert.NoError(t, err)
		assert.Len(t, profile.Experience, 2)
		mockProfiles.AssertNotCalled(t, "UpdateExperience", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject an entry without required fields", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockProfiles, new(MockAccountRepo), new(MockPostRepo))

		_, err := uc.AddExperience(context.Background(), accountID, domain.ExperienceFields{Title: "Engineer"})
		assert.Error(t, err)
		mockProfiles.AssertNotCalled(t, "GetByAccountID", mock.Anything, mock.Anything)
	})
}

func TestPostCreate(t *testing.T) {
	author := uuid.NewString()

	t.Run("Should reject empty and whitespace-only text", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		for _, text := range []string{"", "   \t"} {
			_, err := uc.Create(context.Background(), author, text)

			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.NotEmpty(t, appErr.Fields)
		}
		mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should snapshot the author and start with empty likes and comments", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockAccounts := new(MockAccountRepo)
		uc := usecase.NewPostUsecase(mockPosts, mockAccounts)

		mockAccounts.On("GetByID", mock.Anything, author).Return(&domain.Account{
			ID: author, Name: "John", AvatarURL: "https://www.gravatar.com/avatar/abc",
		}, nil)
		mockPosts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Post")).Return(nil)

		post, err := uc.Create(context.Background(), author, "hello")
		assert.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, author, post.AccountID)
		assert.Equal(t, "John", post.Name)
		assert.Equal(t, "https://www.gravatar.com/avatar/abc", post.AvatarURL)
		assert.Equal(t, "hello", post.Body)
		assert.Equal(t, []domain.Like{}, post.Likes)
		assert.Equal(t, []domain.Comment{}, post.Comments)
		mockPosts.AssertExpectations(t)
	})
}

func TestPostOwnership(t *testing.T) {
	author := uuid.NewString()
	stranger := uuid.NewString()
	postID := uuid.NewString()

	t.Run("Should report not found before checking ownership", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		mockPosts.On("GetByID", mock.Anything, postID).Return(nil, nil)

		err := uc.Delete(context.Background(), stranger, postID)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should forbid deleting someone else's post", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&domain.Post{ID: postID, AccountID: author}, nil)

		err := uc.Delete(context.Background(), stranger, postID)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		mockPosts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLikeUnlike(t *testing.T) {
	accountID := uuid.NewString()
	postID := uuid.NewString()

	t.Run("Should reject a second like from the same account", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		mockPosts.On("GetByID", mock.Anything, postID).Return(&domain.Post{
			ID:    postID,
			Likes: []domain.Like{{AccountID: accountID}},
		}, nil)

		_, err := uc.Like(context.Background(), accountID, postID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already liked")
	})

	t.Run("Should reject unlike without a prior like", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&domain.Post{ID: postID, Likes: []domain.Like{}}, nil)

		_, err := uc.Unlike(context.Background(), accountID, postID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not yet been liked")
	})

	t.Run("Should remove only the caller's like", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		other := uuid.NewString()
		mockPosts.On("GetByID", mock.Anything, postID).Return(&domain.Post{
			ID:    postID,
			Likes: []domain.Like{{AccountID: other}, {AccountID: accountID}},
		}, nil)
		mockPosts.On("UpdateLikes", mock.Anything, postID, mock.Anything).Return(nil)

		likes, err := uc.Unlike(context.Background(), accountID, postID)
		assert.NoError(t, err)
		assert.Len(t, likes, 1)
		assert.Equal(t, other, likes[0].AccountID)
	})
}

func TestComments(t *testing.T) {
	author := uuid.NewString()
	commenter := uuid.NewString()
	postID := uuid.NewString()

	t.Run("Should snapshot the commenter's name and avatar", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		mockAccounts := new(MockAccountRepo)
		uc := usecase.NewPostUsecase(mockPosts, mockAccounts)

		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&domain.Post{ID: postID, AccountID: author, Comments: []domain.Comment{}}, nil)
		mockAccounts.On("GetByID", mock.Anything, commenter).Return(&domain.Account{
			ID: commenter, Name: "Sara", AvatarURL: "https://www.gravatar.com/avatar/abc",
		}, nil)
		mockPosts.On("UpdateComments", mock.Anything, postID, mock.Anything).Return(nil)

		post, err := uc.AddComment(context.Background(), commenter, postID, "  nice post  ")
		assert.NoError(t, err)
		assert.Len(t, post.Comments, 1)
		assert.Equal(t, "Sara", post.Comments[0].Name)
		assert.Equal(t, "nice post", post.Comments[0].Body)
		assert.NotEmpty(t, post.Comments[0].ID)
	})

	t.Run("Should locate comments by id so same-author duplicates cannot collide", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		mockPosts.On("GetByID", mock.Anything, postID).Return(&domain.Post{
			ID:        postID,
			AccountID: author,
			Comments: []domain.Comment{
				{ID: "c1", AccountID: commenter, Body: "first"},
				{ID: "c2", AccountID: commenter, Body: "second"},
			},
		}, nil)
		mockPosts.On("UpdateComments", mock.Anything, postID, mock.Anything).Return(nil)

		comments, err := uc.RemoveComment(context.Background(), commenter, postID, "c2")
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, "c1", comments[0].ID)
	})

	t.Run("Should forbid removing someone else's comment", func(t *testing.T) {
		mockPosts := new(MockPostRepo)
		uc := usecase.NewPostUsecase(mockPosts, new(MockAccountRepo))

		mockPosts.On("GetByID", mock.Anything, postID).Return(&domain.Post{
			ID:       postID,
			Comments: []domain.Comment{{ID: "c1", AccountID: commenter}},
		}, nil)

		_, err := uc.RemoveComment(context.Background(), author, postID, "c1")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}
