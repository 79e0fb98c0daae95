// Package oops 演示最小的值对象：必填的名字与可选的年龄。
package oops

import (
	"fmt"
	"io"
	"strconv"
)

// Dog 名字必填，Age 为 nil 表示未设置
type Dog struct {
	Name string
	Age  *int
}

// NewDog 创建 Dog；age 可省略，最多取第一个
func NewDog(name string, age ...int) *Dog {
	d := &Dog{Name: name}
	if len(age) > 0 {
		a := age[0]
		d.Age = &a
	}
	return d
}

// HasAge 是否设置了年龄
func (d *Dog) HasAge() bool { return d.Age != nil }

// AgeString 未设置时输出 None
func (d *Dog) AgeString() string {
	if d.Age == nil {
		return "None"
	}
	return strconv.Itoa(*d.Age)
}

// Bark 只依赖 Name
func (d *Dog) Bark() string {
	return fmt.Sprintf("%s says woof!", d.Name)
}

// RunDemo 创建两只狗并输出属性与叫声
func RunDemo(w io.Writer) {
	dog1 := NewDog("Buddy", 3)
	dog2 := NewDog("Daisy")

	fmt.Fprintln(w, dog1.Name)
	fmt.Fprintln(w, dog1.AgeString())
	fmt.Fprintln(w, dog2.Name)
	fmt.Fprintln(w, dog2.AgeString())
	fmt.Fprintln(w, dog1.Bark())
	fmt.Fprintln(w, dog2.Bark())
}
