package service

import (
	"iter"

	"github.com/bagdasarian/org-tree/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockHierarchyRepository struct {
	mock.Mock
}

func (m *MockHierarchyRepository) SetRoot(name string) (uuid.UUID, error) {
	args := m.Called(name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockHierarchyRepository) Insert(managerName, employeeName string, side domain.Side) (domain.Outcome, uuid.UUID, error) {
	args := m.Called(managerName, employeeName, side)
	return args.Get(0).(domain.Outcome), args.Get(1).(uuid.UUID), args.Error(2)
}

func (m *MockHierarchyRepository) Traverse() (iter.Seq2[int, string], error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq2[int, string]), args.Error(1)
}

func (m *MockHierarchyRepository) Lead() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockHierarchyRepository) Size() int {
	args := m.Called()
	return args.Int(0)
}
