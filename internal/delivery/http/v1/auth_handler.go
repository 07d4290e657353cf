package v1

import (
	"errors"
	"net/http"

	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/response"
	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"
	"github.com/PhatNguyen203/DevConnecting/pkg/security"
	"github.com/PhatNguyen203/DevConnecting/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC  domain.AuthUsecase
	tracker *security.LoginTracker
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tracker *security.LoginTracker) {
	handler := &AuthHandler{
		authUC:  authUC,
		tracker: tracker,
	}

	public.POST("/auth", handler.Login)
	protected.GET("/auth", handler.Me)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	requestID := c.GetString(string(domain.KeyRequestID))
	ctx := c.Request.Context()

	blocked, err := h.tracker.IsBlocked(ctx, req.Email)
	if err == nil && blocked {
		if logger := security.DefaultLogger(); logger != nil {
			logger.LogLoginBlocked(req.Email, c.ClientIP(), requestID)
		}
		response.Error(c, http.StatusTooManyRequests, "too many failed login attempts, please try again later", nil)
		return
	}

	credential, err := h.authUC.Login(ctx, req.Email, req.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			_, _ = h.tracker.RecordFailure(ctx, req.Email)
			if logger := security.DefaultLogger(); logger != nil {
				logger.LogLoginFailed(req.Email, c.ClientIP(), c.Request.UserAgent(), requestID)
			}
		}
		c.Error(err)
		return
	}

	_ = h.tracker.ClearFailures(ctx, req.Email)
	if logger := security.DefaultLogger(); logger != nil {
		logger.LogLoginSuccess(req.Email, c.ClientIP(), requestID)
	}

	response.Success(c, http.StatusOK, "login successful", gin.H{
		"token": credential,
	})
}

// Me returns the caller's account, resolved from the verified credential.
// The password hash never leaves the domain type.
func (h *AuthHandler) Me(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	account, err := h.authUC.CurrentAccount(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "current account", account)
}
