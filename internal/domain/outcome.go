package domain

// Outcome - результат вставки сотрудника под менеджера
type Outcome int

const (
	OutcomeAttached Outcome = iota + 1
	OutcomeSlotOccupied
	OutcomeInvalidSide
	OutcomeManagerNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAttached:
		return "ATTACHED"
	case OutcomeSlotOccupied:
		return "SLOT_OCCUPIED"
	case OutcomeInvalidSide:
		return "INVALID_SIDE"
	case OutcomeManagerNotFound:
		return "MANAGER_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}
