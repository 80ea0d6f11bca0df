package service

import (
	"iter"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bagdasarian/org-tree/internal/domain"
	"github.com/bagdasarian/org-tree/internal/repository"
)

type hierarchyService struct {
	hierarchyRepo repository.HierarchyRepository
	log           logrus.FieldLogger
}

// NewHierarchyService создает новый экземпляр HierarchyService
func NewHierarchyService(hierarchyRepo repository.HierarchyRepository, log logrus.FieldLogger) HierarchyService {
	return &hierarchyService{
		hierarchyRepo: hierarchyRepo,
		log:           log.WithField("component", "hierarchy"),
	}
}

// SetLead назначает тимлида (корень дерева)
func (s *hierarchyService) SetLead(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewInvalidNameError("team lead name")
	}

	id, err := s.hierarchyRepo.SetRoot(name)
	if err != nil {
		lead, _ := s.hierarchyRepo.Lead()
		s.log.WithFields(logrus.Fields{"lead": lead, "requested": name}).Warn("team lead already set")
		return err
	}

	s.log.WithFields(logrus.Fields{"lead": name, "id": id.String()}).Info("team lead set")
	return nil
}

// AddEmployee добавляет сотрудника под менеджера на указанную сторону.
// Пустое дерево проверяется раньше имени: без тимлида всегда ErrTreeEmpty.
func (s *hierarchyService) AddEmployee(managerName, employeeName string, side domain.Side) (domain.Outcome, error) {
	managerName = strings.TrimSpace(managerName)
	employeeName = strings.TrimSpace(employeeName)

	logger := s.log.WithFields(logrus.Fields{
		"manager":  managerName,
		"employee": employeeName,
		"side":     string(side),
	})

	if _, ok := s.hierarchyRepo.Lead(); !ok {
		logger.WithError(domain.ErrTreeEmpty).Warn("insert rejected")
		return 0, domain.ErrTreeEmpty
	}

	if employeeName == "" {
		return 0, domain.NewInvalidNameError("employee name")
	}

	outcome, id, err := s.hierarchyRepo.Insert(managerName, employeeName, side)
	if err != nil {
		logger.WithError(err).Warn("insert rejected")
		return 0, err
	}

	logger = logger.WithField("outcome", outcome.String())
	if outcome == domain.OutcomeAttached {
		logger.WithFields(logrus.Fields{
			"id":   id.String(),
			"size": s.hierarchyRepo.Size(),
		}).Info("employee attached")
	} else {
		logger.Debug("employee not attached")
	}

	return outcome, nil
}

// Structure возвращает обход иерархии в прямом порядке
func (s *hierarchyService) Structure() (iter.Seq2[int, string], error) {
	return s.hierarchyRepo.Traverse()
}

func (s *hierarchyService) Lead() (string, bool) {
	return s.hierarchyRepo.Lead()
}
