package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PhatNguyen203/DevConnecting/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	query := `
		SELECT
			p.id, p.account_id, a.name, a.avatar_url, p.status, p.skills,
			COALESCE(p.company, ''), COALESCE(p.website, ''), COALESCE(p.location, ''),
			COALESCE(p.bio, ''), COALESCE(p.github_username, ''),
			p.social, p.experience, p.education, p.created_at, p.updated_at
		FROM profiles p
		JOIN accounts a ON a.id = p.account_id
		WHERE p.account_id = $1`

	var p domain.Profile
	var skills []string
	var socialJSON, experienceJSON, educationJSON []byte

	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&p.ID, &p.AccountID, &p.Name, &p.AvatarURL, &p.Status, pq.Array(&skills),
		&p.Company, &p.Website, &p.Location,
		&p.Bio, &p.GithubUsername,
		&socialJSON, &experienceJSON, &educationJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Skills = skills
	if err := unmarshalNested(socialJSON, &p.Social); err != nil {
		return nil, err
	}
	if err := unmarshalNested(experienceJSON, &p.Experience); err != nil {
		return nil, err
	}
	if err := unmarshalNested(educationJSON, &p.Education); err != nil {
		return nil, err
	}
	if p.Experience == nil {
		p.Experience = []domain.Experience{}
	}
	if p.Education == nil {
		p.Education = []domain.Education{}
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	socialJSON, experienceJSON, educationJSON, err := marshalCollections(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles
			(id, account_id, status, skills, company, website, location, bio,
			 github_username, social, experience, education, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.db.Exec(ctx, query,
		profile.ID, profile.AccountID, profile.Status, pq.Array(profile.Skills),
		profile.Company, profile.Website, profile.Location, profile.Bio,
		profile.GithubUsername, socialJSON, experienceJSON, educationJSON,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

// ReplaceByAccountID overwrites the profile's scalar field set and social
// links by owner key. Experience and education are owned collections with
// their own mutation paths and are left untouched here.
func (r *profileRepo) ReplaceByAccountID(ctx context.Context, profile *domain.Profile) error {
	socialJSON, err := json.Marshal(profile.Social)
	if err != nil {
		return err
	}

	query := `
		UPDATE profiles SET
			status = $2, skills = $3, company = $4, website = $5, location = $6,
			bio = $7, github_username = $8, social = $9, updated_at = now()
		WHERE account_id = $1`
	_, err = r.db.Exec(ctx, query,
		profile.AccountID, profile.Status, pq.Array(profile.Skills),
		profile.Company, profile.Website, profile.Location,
		profile.Bio, profile.GithubUsername, socialJSON,
	)
	return err
}

// UpdateExperience writes the whole experience list in one single-row
// UPDATE, keeping the nested-collection mutation atomic at the store level.
func (r *profileRepo) UpdateExperience(ctx context.Context, profileID string, list []domain.Experience) error {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`UPDATE profiles SET experience = $2, updated_at = now() WHERE id = $1`,
		profileID, listJSON,
	)
	return err
}

func (r *profileRepo) UpdateEducation(ctx context.Context, profileID string, list []domain.Education) error {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`UPDATE profiles SET education = $2, updated_at = now() WHERE id = $1`,
		profileID, listJSON,
	)
	return err
}

func (r *profileRepo) DeleteByAccountID(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE account_id = $1`, accountID)
	return err
}

func marshalCollections(profile *domain.Profile) (social, experience, education []byte, err error) {
	if social, err = json.Marshal(profile.Social); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal social: %w", err)
	}
	if experience, err = json.Marshal(profile.Experience); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal experience: %w", err)
	}
	if education, err = json.Marshal(profile.Education); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal education: %w", err)
	}
	return social, experience, education, nil
}

func unmarshalNested(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
