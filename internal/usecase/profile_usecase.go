package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"

	"github.com/google/uuid"
)

type profileUsecase struct {
	profiles domain.ProfileRepository
	accounts domain.AccountRepository
	posts    domain.PostRepository
}

func NewProfileUsecase(profiles domain.ProfileRepository, accounts domain.AccountRepository, posts domain.PostRepository) domain.ProfileUsecase {
	return &profileUsecase{
		profiles: profiles,
		accounts: accounts,
		posts:    posts,
	}
}

func (u *profileUsecase) GetOwn(ctx context.Context, accountID string) (*domain.Profile, error) {
	profile, err := u.profiles.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("there is no profile for this account")
	}
	return profile, nil
}

// Upsert builds the sanitized field set from fields and either replaces the
// existing profile by owner key or creates a new one. Repeating the call
// with identical input yields the same document.
func (u *profileUsecase) Upsert(ctx context.Context, accountID string, fields domain.ProfileFields) (*domain.Profile, error) {
	skills := splitSkills(fields.Skills)
	var missing []string
	if fields.Status == "" {
		missing = append(missing, "status is required")
	}
	if len(skills) == 0 {
		missing = append(missing, "skills is required")
	}
	if len(missing) > 0 {
		return nil, apperror.Validation(missing)
	}

	existing, err := u.profiles.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	profile := &domain.Profile{
		AccountID:      accountID,
		Status:         fields.Status,
		Skills:         skills,
		Company:        fields.Company,
		Website:        fields.Website,
		Location:       fields.Location,
		Bio:            fields.Bio,
		GithubUsername: fields.GithubUsername,
		Social:         fields.Social,
	}

	if existing != nil {
		profile.ID = existing.ID
		if err := u.profiles.ReplaceByAccountID(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	} else {
		now := time.Now().UTC()
		profile.ID = uuid.NewString()
		profile.Experience = []domain.Experience{}
		profile.Education = []domain.Education{}
		profile.CreatedAt = now
		profile.UpdatedAt = now
		if err := u.profiles.Create(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	// Re-read for the joined owner name/avatar and untouched collections.
	return u.GetOwn(ctx, accountID)
}

func (u *profileUsecase) GetByAccount(ctx context.Context, accountID string) (*domain.Profile, error) {
	// A malformed owner id and an absent profile are the same outward result.
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, apperror.NotFound("profile not found")
	}
	profile, err := u.profiles.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("profile not found")
	}
	return profile, nil
}

// DeleteOwn removes the caller's posts, profile, and account, in that order.
func (u *profileUsecase) DeleteOwn(ctx context.Context, accountID string) error {
	if err := u.posts.DeleteByAccountID(ctx, accountID); err != nil {
		return apperror.Internal(err)
	}
	if err := u.profiles.DeleteByAccountID(ctx, accountID); err != nil {
		return apperror.Internal(err)
	}
	if err := u.accounts.Delete(ctx, accountID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *profileUsecase) AddExperience(ctx context.Context, accountID string, fields domain.ExperienceFields) (*domain.Profile, error) {
	if fields.Title == "" || fields.Company == "" || fields.From == "" {
		return nil, apperror.Validation([]string{"title, company and from date are required"})
	}

	profile, err := u.GetOwn(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		ID:          uuid.NewString(),
		Title:       fields.Title,
		Company:     fields.Company,
		Location:    fields.Location,
		From:        fields.From,
		To:          fields.To,
		Current:     fields.Current,
		Description: fields.Description,
	}
	list := append(profile.Experience, entry)

	if err := u.profiles.UpdateExperience(ctx, profile.ID, list); err != nil {
		return nil, apperror.Internal(err)
	}
	profile.Experience = list
	return profile, nil
}

// RemoveExperience deletes the entry with the given id. An unknown id is a
// no-op: the profile is returned unchanged, never with another entry removed.
func (u *profileUsecase) RemoveExperience(ctx context.Context, accountID, entryID string) (*domain.Profile, error) {
	profile, err := u.GetOwn(ctx, accountID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, entry := range profile.Experience {
		if entry.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return profile, nil
	}

	list := append(profile.Experience[:idx], profile.Experience[idx+1:]...)
	if err := u.profiles.UpdateExperience(ctx, profile.ID, list); err != nil {
		return nil, apperror.Internal(err)
	}
	profile.Experience = list
	return profile, nil
}

func (u *profileUsecase) AddEducation(ctx context.Context, accountID string, fields domain.EducationFields) (*domain.Profile, error) {
	if fields.School == "" || fields.Degree == "" || fields.FieldOfStudy == "" || fields.From == "" {
		return nil, apperror.Validation([]string{"school, degree, field of study and from date are required"})
	}

	profile, err := u.GetOwn(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		ID:           uuid.NewString(),
		School:       fields.School,
		Degree:       fields.Degree,
		FieldOfStudy: fields.FieldOfStudy,
		From:         fields.From,
		To:           fields.To,
		Current:      fields.Current,
		Description:  fields.Description,
	}
	list := append(profile.Education, entry)

	if err := u.profiles.UpdateEducation(ctx, profile.ID, list); err != nil {
		return nil, apperror.Internal(err)
	}
	profile.Education = list
	return profile, nil
}

func (u *profileUsecase) RemoveEducation(ctx context.Context, accountID, entryID string) (*domain.Profile, error) {
	profile, err := u.GetOwn(ctx, accountID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, entry := range profile.Education {
		if entry.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return profile, nil
	}

	list := append(profile.Education[:idx], profile.Education[idx+1:]...)
	if err := u.profiles.UpdateEducation(ctx, profile.ID, list); err != nil {
		return nil, apperror.Internal(err)
	}
	profile.Education = list
	return profile, nil
}

// splitSkills turns a comma-separated string into an ordered, trimmed list.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
