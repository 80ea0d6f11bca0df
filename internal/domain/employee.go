package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Employee - узел иерархии: сотрудник и два слота для подчиненных
type Employee struct {
	ID    uuid.UUID
	Name  string
	Left  *Employee
	Right *Employee
}

// NewEmployee создает сотрудника без подчиненных
func NewEmployee(name string) *Employee {
	return &Employee{
		ID:   uuid.New(),
		Name: name,
	}
}

type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
)

// ParseSide нормализует ввод пользователя. Неизвестное значение возвращается как есть,
// его проверка происходит при вставке.
func ParseSide(s string) Side {
	return Side(strings.ToUpper(strings.TrimSpace(s)))
}

func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}
