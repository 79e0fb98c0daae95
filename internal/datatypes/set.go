package datatypes

import (
	"slices"
	"strconv"
	"strings"
)

// IntSet 无序整数集合
// 迭代顺序不稳定，输出时统一按升序排列
type IntSet struct {
	items map[int]struct{}
}

// NewIntSet 用给定元素创建集合，重复元素只保留一个
func NewIntSet(values ...int) *IntSet {
	s := &IntSet{items: make(map[int]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add 添加元素，已存在时无变化
func (s *IntSet) Add(v int) {
	s.items[v] = struct{}{}
}

// Has 是否包含 v
func (s *IntSet) Has(v int) bool {
	_, ok := s.items[v]
	return ok
}

// Len 元素个数
func (s *IntSet) Len() int { return len(s.items) }

// Sorted 升序返回全部元素
func (s *IntSet) Sorted() []int {
	out := make([]int, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (s *IntSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
