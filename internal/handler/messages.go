package handler

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/org-tree/internal/domain"
)

const menuText = `
📋 Team Management Menu
1. Add Team Lead (root)
2. Add Employee
3. Print Team Structure
4. Exit`

const (
	promptChoice   = "Choose an option (1–4): "
	promptLead     = "Enter team lead's name: "
	promptManager  = "Enter the manager's name: "
	promptEmployee = "Enter the new employee's name: "
	promptSide     = "Should this employee be on the LEFT or RIGHT of the manager? "

	msgStructureHeader = "\n🌳  Current Team Structure:"
	msgGoodbye         = "👋 Goodbye!"
	msgInvalidOption   = "❌ Invalid option. Try again."
)

func leadAddedMessage(name string) string {
	return fmt.Sprintf("✅ %s added as the team lead.", name)
}

// outcomeMessage формирует текст для результата вставки
func outcomeMessage(outcome domain.Outcome, managerName, employeeName string, side domain.Side) string {
	switch outcome {
	case domain.OutcomeAttached:
		return fmt.Sprintf("✅ %s added to the %s of %s.", employeeName, side, managerName)
	case domain.OutcomeSlotOccupied:
		return fmt.Sprintf("⚠️ %s already has a %s subordinate.", managerName, strings.ToLower(string(side)))
	case domain.OutcomeInvalidSide:
		return "❌ Invalid side. Choose 'left' or 'right'."
	case domain.OutcomeManagerNotFound:
		return fmt.Sprintf("❌ Manager '%s' not found in the team.", managerName)
	default:
		return fmt.Sprintf("❌ Unexpected result %s.", outcome)
	}
}

// levelLine рисует одну строку структуры: отступ по глубине и имя
func levelLine(indent string, depth int, name string) string {
	return strings.Repeat(indent, depth) + "- " + name
}
