// Package datatypes 按顺序演示内建的标量、序列、映射、集合、布尔与空值。
package datatypes

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Coordinates 不可变的二元组；数组是值类型，赋值即复制
type Coordinates [2]float64

func (c Coordinates) String() string {
	return "(" + formatFloat(c[0]) + ", " + formatFloat(c[1]) + ")"
}

// Substring 按字符下标截取 [start, end)
func Substring(s string, start, end int) string {
	r := []rune(s)
	return string(r[start:end])
}

// CharAt 返回第 i 个字符
func CharAt(s string, i int) string {
	return string([]rune(s)[i])
}

// AppendReverse 追加 extra 后整体反转，不修改入参
func AppendReverse(items []string, extra ...string) []string {
	out := make([]string, 0, len(items)+len(extra))
	out = append(out, items...)
	out = append(out, extra...)
	slices.Reverse(out)
	return out
}

// NewPerson 演示用的 person 映射
func NewPerson() *OrderedMap[string, any] {
	person := NewOrderedMap[string, any]()
	person.Set("name", "Alice")
	person.Set("age", 25)
	person.Set("city", "New York")
	return person
}

// RunDemo 输出完整的类型之旅
func RunDemo(w io.Writer) {
	// 数值
	x := 10
	y := -3
	_ = y // 只赋值，不输出
	fmt.Fprintf(w, "%T\n", x)
	fmt.Fprintln(w, x)

	z := 13.23
	fmt.Fprintf(w, "%T\n", z)
	fmt.Fprintln(w, z)

	// 字符串
	greeting := "Hello, World!"
	fmt.Fprintln(w, greeting)
	fmt.Fprintln(w, CharAt(greeting, 0))
	fmt.Fprintln(w, Substring(greeting, 7, 12))
	fmt.Fprintf(w, "%T\n", greeting)

	// 切片
	fruits := []string{"apple", "banana", "cherry"}
	fmt.Fprintln(w, fruits)
	fmt.Fprintln(w, fruits[1])
	fruits = AppendReverse(fruits, "date")
	fmt.Fprintln(w, fruits)
	fmt.Fprintf(w, "%T\n", fruits)

	// 二元组
	coordinates := Coordinates{10.0, 20.0}
	fmt.Fprintln(w, coordinates)
	fmt.Fprintln(w, formatFloat(coordinates[0]))
	fmt.Fprintf(w, "%T\n", coordinates)

	// 集合
	uniqueNumbers := NewIntSet(11, 2, 3, 4, 14, 5)
	fmt.Fprintln(w, uniqueNumbers)
	uniqueNumbers.Add(6)
	fmt.Fprintln(w, uniqueNumbers)
	fmt.Fprintf(w, "%T\n", uniqueNumbers)

	// 映射
	person := NewPerson()
	fmt.Fprintln(w, person)
	name, _ := person.Get("name")
	fmt.Fprintln(w, name)
	person.Set("email", "alice@example.com")
	fmt.Fprintln(w, person)
	fmt.Fprintf(w, "%T\n", person)

	// 布尔
	isActive := true
	isDeleted := false
	fmt.Fprintln(w, isActive)
	fmt.Fprintln(w, isDeleted)
	fmt.Fprintf(w, "%T\n", isActive)

	// 空值
	var nothing any
	fmt.Fprintln(w, nothing)
	fmt.Fprintf(w, "%T\n", nothing)
}

// formatFloat 整数值也保留一位小数，如 10.0
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
