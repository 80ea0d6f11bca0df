package memory

import (
	"iter"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/bagdasarian/org-tree/internal/domain"
)

// hierarchyRepository - бинарное дерево подчинения, живет только в памяти процесса.
// Не потокобезопасно: предполагается один пользователь меню.
type hierarchyRepository struct {
	root *domain.Employee
	size int
}

func NewHierarchyRepository() *hierarchyRepository {
	return &hierarchyRepository{}
}

// SetRoot назначает тимлида и возвращает его ID. Повторное назначение запрещено.
func (r *hierarchyRepository) SetRoot(name string) (uuid.UUID, error) {
	if r.root != nil {
		return uuid.Nil, domain.ErrLeadExists
	}

	r.root = domain.NewEmployee(name)
	r.size = 1
	return r.root.ID, nil
}

// Insert ищет менеджера обходом в прямом порядке (узел, левое поддерево, правое)
// и прикрепляет нового сотрудника на указанную сторону.
// Поиск останавливается на первом совпадении, даже если слот занят или сторона неверна.
// ID нового сотрудника возвращается только для OutcomeAttached, иначе uuid.Nil.
func (r *hierarchyRepository) Insert(managerName, employeeName string, side domain.Side) (domain.Outcome, uuid.UUID, error) {
	if r.root == nil {
		return 0, uuid.Nil, domain.ErrTreeEmpty
	}

	manager := r.find(managerName)
	if manager == nil {
		return domain.OutcomeManagerNotFound, uuid.Nil, nil
	}

	var slot **domain.Employee
	switch side {
	case domain.SideLeft:
		slot = &manager.Left
	case domain.SideRight:
		slot = &manager.Right
	default:
		return domain.OutcomeInvalidSide, uuid.Nil, nil
	}

	if *slot != nil {
		return domain.OutcomeSlotOccupied, uuid.Nil, nil
	}

	*slot = domain.NewEmployee(employeeName)
	r.size++
	return domain.OutcomeAttached, (*slot).ID, nil
}

func (r *hierarchyRepository) find(name string) *domain.Employee {
	fold := cases.Fold()
	want := fold.String(name)

	stack := []*domain.Employee{r.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fold.String(node.Name) == want {
			return node
		}

		// правый кладем первым, чтобы левое поддерево обошлось раньше
		if node.Right != nil {
			stack = append(stack, node.Right)
		}
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
	}

	return nil
}

// Traverse возвращает ленивую последовательность (глубина, имя) в прямом порядке.
// Последовательность можно перебирать повторно, каждый проход начинается от корня.
func (r *hierarchyRepository) Traverse() (iter.Seq2[int, string], error) {
	if r.root == nil {
		return nil, domain.ErrNoEmployees
	}

	root := r.root
	return func(yield func(int, string) bool) {
		type frame struct {
			node  *domain.Employee
			depth int
		}

		stack := []frame{{node: root, depth: 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(f.depth, f.node.Name) {
				return
			}

			if f.node.Right != nil {
				stack = append(stack, frame{node: f.node.Right, depth: f.depth + 1})
			}
			if f.node.Left != nil {
				stack = append(stack, frame{node: f.node.Left, depth: f.depth + 1})
			}
		}
	}, nil
}

func (r *hierarchyRepository) Lead() (string, bool) {
	if r.root == nil {
		return "", false
	}
	return r.root.Name, true
}

func (r *hierarchyRepository) Size() int {
	return r.size
}
