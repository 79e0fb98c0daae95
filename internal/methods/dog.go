// Package methods 演示三类方法：绑定实例的方法、绑定类型的共享数据、与实例无关的函数。
package methods

import (
	"fmt"
	"io"
)

// Species 所有 Dog 共享的类级属性
const Species = "Canis lupus"

// AdultAge 成年年龄下限（含）
const AdultAge = 3

// Dog 名字与年龄
type Dog struct {
	Name string
	Age  int
}

// NewDog 创建 Dog
func NewDog(name string, age int) *Dog {
	return &Dog{Name: name, Age: age}
}

// Bark 实例方法
func (d *Dog) Bark() string {
	return fmt.Sprintf("%s is barking.", d.Name)
}

// GetAge 实例方法
func (d *Dog) GetAge() int {
	return d.Age
}

// Species 通过实例访问类级属性
func (Dog) Species() string {
	return Species
}

// GetSpecies 类级方法：不需要实例
func GetSpecies() string {
	return Species
}

// IsAdult 静态方法：只依赖参数
func IsAdult(age int) bool {
	return age >= AdultAge
}

// RunDemo 依次调用实例方法、类级方法与静态方法
func RunDemo(w io.Writer) {
	myDog := NewDog("Rex", 5)

	fmt.Fprintln(w, myDog.Bark())
	fmt.Fprintln(w, myDog.GetAge())
	fmt.Fprintln(w, GetSpecies())
	fmt.Fprintln(w, IsAdult(5))
	fmt.Fprintln(w, IsAdult(2))
}
