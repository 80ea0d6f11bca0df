package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrLeadExists - тимлид уже назначен
	ErrLeadExists = &DomainError{
		Code:    "LEAD_EXISTS",
		Message: "team lead already exists",
	}

	// ErrTreeEmpty - нельзя добавлять сотрудников, пока нет тимлида
	ErrTreeEmpty = &DomainError{
		Code:    "TREE_EMPTY",
		Message: "add a team lead first before adding employees",
	}

	// ErrNoEmployees - структура команды пуста
	ErrNoEmployees = &DomainError{
		Code:    "NO_EMPLOYEES",
		Message: "no team lead or employees added yet",
	}

	// ErrInvalidName - пустое имя
	ErrInvalidName = &DomainError{
		Code:    "INVALID_NAME",
		Message: "name must not be empty",
	}
)

// NewInvalidNameError создает ошибку INVALID_NAME с указанием поля
func NewInvalidNameError(field string) *DomainError {
	return &DomainError{
		Code:    "INVALID_NAME",
		Message: fmt.Sprintf("%s must not be empty", field),
	}
}
