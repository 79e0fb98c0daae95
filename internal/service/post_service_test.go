package service

import (
	"context"
	"errors"
	"testing"

	"course-basics/internal/dto"
)

func TestPostService_GetByID(t *testing.T) {
	svc := NewPostService()

	p, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if p.UserID != 1 || p.ID != 1 {
		t.Errorf("帖子字段不符: %+v", p)
	}

	if _, err := svc.GetByID(context.Background(), 101); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("期望 ErrPostNotFound，实际: %v", err)
	}
}

func TestPostService_List_SortedByID(t *testing.T) {
	svc := NewPostServiceWith([]dto.Post{{ID: 3}, {ID: 1}, {ID: 2}})

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	for i, p := range posts {
		if p.ID != i+1 {
			t.Errorf("第 %d 项期望 ID=%d，实际=%d", i, i+1, p.ID)
		}
	}
}
