package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// SocialLinks keys are fixed; entries are present only when supplied.
type SocialLinks struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type Profile struct {
	ID        string `json:"id"`
	AccountID string `json:"user"`
	// Owner name and avatar, joined from the accounts table on reads.
	Name           string       `json:"name,omitempty"`
	AvatarURL      string       `json:"avatar,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"github_username,omitempty"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ProfileFields is the sanitized field set for a profile upsert. Every
// optional field is listed explicitly; empty means "not supplied".
type ProfileFields struct {
	Status         string
	Skills         string // comma-separated, split and trimmed by the usecase
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Social         SocialLinks
}

type ExperienceFields struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type EducationFields struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

type ProfileRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	ReplaceByAccountID(ctx context.Context, profile *Profile) error
	UpdateExperience(ctx context.Context, profileID string, list []Experience) error
	UpdateEducation(ctx context.Context, profileID string, list []Education) error
	DeleteByAccountID(ctx context.Context, accountID string) error
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, accountID string) (*Profile, error)
	Upsert(ctx context.Context, accountID string, fields ProfileFields) (*Profile, error)
	GetByAccount(ctx context.Context, accountID string) (*Profile, error)
	DeleteOwn(ctx context.Context, accountID string) error
	AddExperience(ctx context.Context, accountID string, fields ExperienceFields) (*Profile, error)
	RemoveExperience(ctx context.Context, accountID, entryID string) (*Profile, error)
	AddEducation(ctx context.Context, accountID string, fields EducationFields) (*Profile, error)
	RemoveEducation(ctx context.Context, accountID, entryID string) (*Profile, error)
}
