package v1

import (
	"net/http"

	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/response"
	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"
	"github.com/PhatNguyen203/DevConnecting/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	// Public route: anyone may look up a profile by its owner's account id
	public.GET("/profile/user/:id", handler.GetByAccount)

	protectedProfile := protected.Group("/profile")
	{
		protectedProfile.GET("/me", handler.GetMine)
		protectedProfile.POST("", handler.Upsert)
		protectedProfile.DELETE("", handler.DeleteOwn)
		protectedProfile.PUT("/experience", handler.AddExperience)
		protectedProfile.DELETE("/experience/:id", handler.RemoveExperience)
		protectedProfile.PUT("/education", handler.AddEducation)
		protectedProfile.DELETE("/education/:id", handler.RemoveEducation)
	}
}

type UpsertProfileRequest struct {
	Status         string `json:"status" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	Company        string `json:"company"`
	Website        string `json:"website" binding:"omitempty,url"`
	Location       string `json:"location"`
	Bio            string `json:"bio" binding:"max=500"`
	GithubUsername string `json:"github_username"`
	YouTube        string `json:"youtube" binding:"omitempty,url"`
	Twitter        string `json:"twitter" binding:"omitempty,url"`
	Facebook       string `json:"facebook" binding:"omitempty,url"`
	Instagram      string `json:"instagram" binding:"omitempty,url"`
	LinkedIn       string `json:"linkedin" binding:"omitempty,url"`
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required,date"`
	To          string `json:"to" binding:"omitempty,date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required,date"`
	To           string `json:"to" binding:"omitempty,date"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	profile, err := h.profileUC.GetOwn(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "profile", profile)
}

// Upsert creates the caller's profile or replaces it when one exists.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	fields := domain.ProfileFields{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: domain.SocialLinks{
			YouTube:   req.YouTube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Instagram: req.Instagram,
			LinkedIn:  req.LinkedIn,
		},
	}

	profile, err := h.profileUC.Upsert(c.Request.Context(), accountID, fields)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "profile saved", profile)
}

func (h *ProfileHandler) GetByAccount(c *gin.Context) {
	profile, err := h.profileUC.GetByAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "profile", profile)
}

// DeleteOwn removes the caller's posts, profile and account.
func (h *ProfileHandler) DeleteOwn(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	if err := h.profileUC.DeleteOwn(c.Request.Context(), accountID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "account removed", nil)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	profile, err := h.profileUC.AddExperience(c.Request.Context(), accountID, domain.ExperienceFields{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "experience added", profile)
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	profile, err := h.profileUC.RemoveExperience(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "experience removed", profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	profile, err := h.profileUC.AddEducation(c.Request.Context(), accountID, domain.EducationFields{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "education added", profile)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	profile, err := h.profileUC.RemoveEducation(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "education removed", profile)
}
