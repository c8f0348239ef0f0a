// Package controller provides output adapters for displaying scan results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// UI defines the interface for displaying scan output. Implementations can
// use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)

	// DisplayScanInfo announces the scan parameters before scanning starts.
	DisplayScanInfo(ctx context.Context, scope *m.Scope, workers int)

	// DisplayEntryScanned reports one finished search-path entry. It may be
	// called from concurrent scan workers.
	DisplayEntryScanned(ctx context.Context, entry m.Entry)

	// DisplayOwnership renders the flattened entry-to-scope table.
	DisplayOwnership(ctx context.Context, ownership *m.EntryOwnership) error

	// DisplayInventory renders the scan result summary.
	DisplayInventory(ctx context.Context, inventory *m.Inventory) error

	// DisplayClasses renders class records from a class query.
	DisplayClasses(ctx context.Context, classes []m.ClassResource) error
}

// NewUI picks the TUI when stdout is an interactive terminal and the plain
// table UI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is an interactive terminal.
func IsTTY(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
