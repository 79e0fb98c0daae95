package dto

// ── 帖子模块 DTO（与 jsonplaceholder 的 /posts 字段一致）──

// Post 帖子
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// StatusRequest 故障注入路由参数
type StatusRequest struct {
	Code int `uri:"code" binding:"required,min=200,max=599"`
}
