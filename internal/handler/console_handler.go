package handler

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/org-tree/internal/domain"
)

// Run крутит меню, пока пользователь не выберет выход или не закончится ввод
func (h *Handler) Run() error {
	for {
		h.println(menuText)
		choice, ok := h.prompt(promptChoice)
		if !ok {
			h.println("")
			h.println(msgGoodbye)
			return h.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			h.AddLead()
		case "2":
			h.AddEmployee()
		case "3":
			h.PrintStructure()
		case "4":
			h.println(msgGoodbye)
			return nil
		default:
			h.println(msgInvalidOption)
		}
	}
}

func (h *Handler) AddLead() {
	if _, ok := h.hierarchyService.Lead(); ok {
		h.handleError(domain.ErrLeadExists)
		return
	}

	name, ok := h.prompt(promptLead)
	if !ok {
		return
	}

	if err := h.hierarchyService.SetLead(name); err != nil {
		h.handleError(err)
		return
	}

	h.println(leadAddedMessage(strings.TrimSpace(name)))
}

func (h *Handler) AddEmployee() {
	manager, ok := h.prompt(promptManager)
	if !ok {
		return
	}
	employee, ok := h.prompt(promptEmployee)
	if !ok {
		return
	}
	sideInput, ok := h.prompt(promptSide)
	if !ok {
		return
	}

	side := domain.ParseSide(sideInput)
	outcome, err := h.hierarchyService.AddEmployee(manager, employee, side)
	if err != nil {
		h.handleError(err)
		return
	}

	h.println(outcomeMessage(outcome, strings.TrimSpace(manager), strings.TrimSpace(employee), side))
}

func (h *Handler) PrintStructure() {
	h.println(msgStructureHeader)

	levels, err := h.hierarchyService.Structure()
	if err != nil {
		h.handleError(err)
		return
	}

	for depth, name := range levels {
		h.println(levelLine(h.indent, depth, name))
	}
}

func (h *Handler) prompt(text string) (string, bool) {
	fmt.Fprint(h.out, text)
	if !h.in.Scan() {
		return "", false
	}
	return h.in.Text(), true
}

func (h *Handler) println(text string) {
	fmt.Fprintln(h.out, text)
}
