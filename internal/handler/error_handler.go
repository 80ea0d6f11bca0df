package handler

import (
	"errors"
	"fmt"

	"github.com/bagdasarian/org-tree/internal/domain"
)

func (h *Handler) handleError(err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		h.println(getErrorMessage(domainErr))
		return
	}

	h.println(fmt.Sprintf("❌ Unexpected error: %v", err))
}

func getErrorMessage(err *domain.DomainError) string {
	switch err.Code {
	case "LEAD_EXISTS":
		return "⚠️ Team lead already exists."
	case "TREE_EMPTY":
		return "⚠️ Add a team lead first before adding employees."
	case "NO_EMPLOYEES":
		return "⚠️ No team lead or employees added yet."
	case "INVALID_NAME":
		return "❌ Invalid name: " + err.Message + "."
	default:
		return "❌ " + err.Message
	}
}
