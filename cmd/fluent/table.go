package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// newTable returns a borderless table; cells are separated by blank columns so
// the output stays easy to grep.
func newTable() *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false)
}

func printTable(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
