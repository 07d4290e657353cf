package v1

import (
	"net/http"

	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/response"
	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"
	"github.com/PhatNguyen203/DevConnecting/pkg/validation"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(protected *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	posts := protected.Group("/posts")
	{
		posts.POST("", handler.Create)
		posts.GET("", handler.List)
		posts.GET("/:id", handler.Get)
		posts.DELETE("/:id", handler.Delete)
		posts.PUT("/like/:id", handler.Like)
		posts.PUT("/unlike/:id", handler.Unlike)
		posts.POST("/comment/:id", handler.AddComment)
		// Nested under the post id; a static "comment" segment cannot share
		// the DELETE tree with the ":id" wildcard above.
		posts.DELETE("/:id/comment/:comment_id", handler.RemoveComment)
	}
}

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	post, err := h.postUC.Create(c.Request.Context(), accountID, req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "post created", post)
}

// List returns every post, newest first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "posts", posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "post", post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	if err := h.postUC.Delete(c.Request.Context(), accountID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "post removed", nil)
}

func (h *PostHandler) Like(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	likes, err := h.postUC.Like(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "post liked", likes)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	likes, err := h.postUC.Unlike(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "post unliked", likes)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	post, err := h.postUC.AddComment(c.Request.Context(), accountID, c.Param("id"), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "comment added", post)
}

func (h *PostHandler) RemoveComment(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))

	comments, err := h.postUC.RemoveComment(c.Request.Context(), accountID, c.Param("id"), c.Param("comment_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "comment removed", comments)
}
