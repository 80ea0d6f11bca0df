package repository

import (
	"iter"

	"github.com/google/uuid"

	"github.com/bagdasarian/org-tree/internal/domain"
)

type HierarchyRepository interface {
	SetRoot(name string) (uuid.UUID, error)
	Insert(managerName, employeeName string, side domain.Side) (domain.Outcome, uuid.UUID, error)
	Traverse() (iter.Seq2[int, string], error)
	Lead() (string, bool)
	Size() int
}
