package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayScanInfo prints the scan parameters.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, scope *m.Scope, workers int) {
	if ctx.Err() != nil {
		return
	}

	if workers > 1 {
		s.cmd.Printf("Scanning from scope %s with %d workers\n", scope, workers)
		return
	}

	s.cmd.Printf("Scanning from scope %s\n", scope)
}

// DisplayEntryScanned is a no-op for SimpleUI; per-entry progress would
// drown the plain output on large classpaths.
func (s *SimpleUI) DisplayEntryScanned(_ context.Context, _ m.Entry) {}

// DisplayOwnership prints the flattened entry ownership table.
func (s *SimpleUI) DisplayOwnership(ctx context.Context, ownership *m.EntryOwnership) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Entry", "Scope"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range ownership.Entries() {
		table.Append([]string{string(entry), ownership.Owner(entry).String()})
	}

	table.SetFooter([]string{"Total Entries", fmt.Sprintf("%d", ownership.Len())})
	table.Render()

	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayInventory prints a per-scope summary of the scan result.
func (s *SimpleUI) DisplayInventory(ctx context.Context, inventory *m.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stats := buildScopeStats(inventory)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scope", "Resources", "Classes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalClasses := 0

	for _, stat := range stats {
		table.Append([]string{stat.scope, fmt.Sprintf("%d", stat.resources), fmt.Sprintf("%d", stat.classes)})
		totalClasses += stat.classes
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", inventory.Len()),
		fmt.Sprintf("%d", totalClasses),
	})
	table.Render()

	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayClasses prints one class record per line with its owning scope.
func (s *SimpleUI) DisplayClasses(ctx context.Context, classes []m.ClassResource) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "Package", "Scope"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, class := range classes {
		table.Append([]string{class.ClassName(), class.PackageName(), class.Scope.String()})
	}

	table.SetFooter([]string{"Total Classes", fmt.Sprintf("%d", len(classes)), ""})
	table.Render()

	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// scopeStat holds resource counts for a single scope.
type scopeStat struct {
	scope     string
	resources int
	classes   int
}

func buildScopeStats(inventory *m.Inventory) []scopeStat {
	info := make(map[string]scopeStat)

	for _, resource := range inventory.Resources() {
		name := resource.Scope.String()

		stat := info[name]
		stat.scope = name
		stat.resources++

		if resource.IsClass() {
			stat.classes++
		}

		info[name] = stat
	}

	stats := make([]scopeStat, 0, len(info))
	for _, stat := range info {
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].scope < stats[j].scope
	})

	return stats
}
