package handler

import (
	"bufio"
	"io"

	"github.com/bagdasarian/org-tree/internal/service"
)

type Handler struct {
	hierarchyService service.HierarchyService
	in               *bufio.Scanner
	out              io.Writer
	indent           string
}

func NewHandler(
	hierarchyService service.HierarchyService,
	in io.Reader,
	out io.Writer,
	indent string,
) *Handler {
	return &Handler{
		hierarchyService: hierarchyService,
		in:               bufio.NewScanner(in),
		out:              out,
		indent:           indent,
	}
}
