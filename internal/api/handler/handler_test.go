package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"course-basics/internal/dto"
	"course-basics/internal/service"
	"course-basics/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

type mockPostService struct {
	getResult  *dto.Post
	getErr     error
	listResult []dto.Post
	listErr    error
}

func (m *mockPostService) GetByID(_ context.Context, _ int) (*dto.Post, error) {
	return m.getResult, m.getErr
}

func (m *mockPostService) List(_ context.Context) ([]dto.Post, error) {
	return m.listResult, m.listErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setupPostRouter(svc service.PostService) *gin.Engine {
	h := NewPostHandler(svc)
	r := gin.New()
	r.GET("/posts", h.ListPosts)
	r.GET("/posts/:id", h.GetPost)
	r.GET("/status/:code", h.Status)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// PostHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPostHandler_GetPost_Success(t *testing.T) {
	mock := &mockPostService{getResult: &dto.Post{UserID: 1, ID: 1, Title: "t", Body: "b"}}
	w := doGet(setupPostRouter(mock), "/posts/1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var post dto.Post
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("响应应为裸 JSON 帖子: %v", err)
	}
	if post.ID != 1 || post.Title != "t" {
		t.Errorf("帖子字段不符: %+v", post)
	}
}

func TestPostHandler_GetPost_NotFound(t *testing.T) {
	mock := &mockPostService{getErr: service.ErrPostNotFound}
	w := doGet(setupPostRouter(mock), "/posts/999")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w.Body.String() != "{}" {
		t.Errorf("expected empty object, got %s", w.Body.String())
	}
}

func TestPostHandler_GetPost_NonNumericID(t *testing.T) {
	w := doGet(setupPostRouter(&mockPostService{}), "/posts/abc")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPostHandler_GetPost_InternalError(t *testing.T) {
	mock := &mockPostService{getErr: errors.New("boom")}
	w := doGet(setupPostRouter(mock), "/posts/1")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 50000 {
		t.Errorf("expected code 50000, got %d", resp.Code)
	}
}

func TestPostHandler_ListPosts(t *testing.T) {
	mock := &mockPostService{listResult: []dto.Post{{ID: 1}, {ID: 2}}}
	w := doGet(setupPostRouter(mock), "/posts")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var posts []dto.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("响应应为数组: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("expected 2 posts, got %d", len(posts))
	}
}

func TestPostHandler_Status(t *testing.T) {
	r := setupPostRouter(&mockPostService{})

	tests := []struct {
		path     string
		wantHTTP int
		wantCode int
	}{
		{"/status/503", http.StatusServiceUnavailable, 503},
		{"/status/404", http.StatusNotFound, 404},
		{"/status/200", http.StatusOK, 0},
		{"/status/42", http.StatusBadRequest, 10001},
		{"/status/abc", http.StatusBadRequest, 10001},
	}
	for _, tt := range tests {
		w := doGet(r, tt.path)
		if w.Code != tt.wantHTTP {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.wantHTTP, w.Code)
		}
		if resp := parseResponse(w); resp.Code != tt.wantCode {
			t.Errorf("%s: expected code %d, got %d", tt.path, tt.wantCode, resp.Code)
		}
	}
}
