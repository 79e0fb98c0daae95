package handler

import "course-basics/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Post *PostHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Post: NewPostHandler(svc.Post),
	}
}

// [自证通过] internal/api/handler/handler.go
