package service

import (
	"iter"

	"github.com/bagdasarian/org-tree/internal/domain"
)

type HierarchyService interface {
	SetLead(name string) error
	AddEmployee(managerName, employeeName string, side domain.Side) (domain.Outcome, error)
	Structure() (iter.Seq2[int, string], error)
	Lead() (string, bool)
}
