package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"classwalk.dev/pkg/classwalk/internal/adapter"
	"classwalk.dev/pkg/classwalk/internal/controller"
	m "classwalk.dev/pkg/classwalk/internal/model"
	classwalkpkg "classwalk.dev/pkg/classwalk/pkg"
)

// journalFileName is the raw record log written next to the inventory.
const journalFileName = "scan.journal"

// ScanArgs carries the parameters of a scan invocation.
type ScanArgs struct {
	// ScopesFile is a YAML hierarchy definition; empty means a flat
	// single-scope hierarchy built from Classpath.
	ScopesFile string

	// Classpath is a PathListSeparator-joined entry list used when no
	// scopes file is given. Empty falls back to the CLASSPATH environment
	// variable.
	Classpath string

	// ScopeName selects the scan starting scope; empty means the leaf
	// scope of the hierarchy.
	ScopeName string

	// Workers bounds the parallel scan of top-level entries; values below
	// 2 keep the scan sequential.
	Workers int

	// Exclude filters out resources whose name matches any pattern.
	Exclude []string

	// Output is the directory the inventory is persisted into; empty
	// disables persistence.
	Output string
}

// ListArgs carries the parameters of an ownership listing.
type ListArgs struct {
	ScopesFile string
	Classpath  string
	ScopeName  string
}

// ClassesArgs carries the parameters of a class query over a saved scan.
type ClassesArgs struct {
	Output    string
	Package   string
	Recursive bool
	TopLevel  bool
}

// Workflow wires the scan engine to the adapters and UI for the CLI
// commands.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	ListEntries(ctx context.Context, args ListArgs) error
	Classes(ctx context.Context, args ClassesArgs) error
}

type workflow struct {
	fs      adapter.ClasspathFSAdapter
	archive adapter.ArchiveAdapter
	store   adapter.InventoryStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fs adapter.ClasspathFSAdapter,
	archive adapter.ArchiveAdapter,
	store adapter.InventoryStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:      fs,
		archive: archive,
		store:   store,
		ui:      ui,
	}
}

// Scan runs a full hierarchy scan and displays, filters and optionally
// persists the resulting inventory.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	hierarchy, scope, err := buildHierarchy(args.ScopesFile, args.Classpath, args.ScopeName)
	if err != nil {
		return err
	}

	if err := w.ui.Start(ctx); err != nil {
		slog.Error("failed to start UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	w.ui.DisplayScanInfo(ctx, scope, args.Workers)

	scanner := NewScanner(w.fs, w.archive, hierarchy,
		WithWorkers(args.Workers),
		WithProgress(func(entry m.Entry) {
			w.ui.DisplayEntryScanned(ctx, entry)
		}),
	)

	inventory, err := scanner.ScanFromRoot(ctx, scope)
	if err != nil {
		slog.Error("scan failed", "scope", scope, "error", err)
		return fmt.Errorf("scan %s: %w", scope, err)
	}

	inventory, err = filterInventory(inventory, args.Exclude)
	if err != nil {
		return err
	}

	if args.Output != "" {
		if err := w.persist(args.Output, inventory); err != nil {
			return err
		}
	}

	return w.ui.DisplayInventory(ctx, inventory)
}

// ListEntries flattens the hierarchy and displays the entry ownership
// table without scanning anything.
func (w *workflow) ListEntries(ctx context.Context, args ListArgs) error {
	hierarchy, scope, err := buildHierarchy(args.ScopesFile, args.Classpath, args.ScopeName)
	if err != nil {
		return err
	}

	ownership, err := Flatten(hierarchy, scope)
	if err != nil {
		slog.Error("failed to flatten hierarchy", "scope", scope, "error", err)
		return fmt.Errorf("flatten %s: %w", scope, err)
	}

	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplayOwnership(ctx, ownership)
}

// Classes queries class records from a previously saved inventory.
func (w *workflow) Classes(ctx context.Context, args ClassesArgs) error {
	inventory, err := w.store.LoadInventory(args.Output)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	var classes []m.ClassResource

	switch {
	case args.Package != "" && args.Recursive:
		classes = inventory.TopLevelClassesRecursive(args.Package)
	case args.Package != "":
		classes = inventory.ClassesInPackage(args.Package)
	case args.TopLevel:
		classes = inventory.TopLevelClasses()
	default:
		classes = inventory.Classes()
	}

	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplayClasses(ctx, classes)
}

// persist writes the inventory and a gob journal of the raw records into
// the output directory.
func (w *workflow) persist(output string, inventory *m.Inventory) error {
	if err := w.store.SaveInventory(output, inventory); err != nil {
		slog.Error("failed to save inventory", "dir", output, "error", err)
		return err
	}

	journal, err := classwalkpkg.NewFileSpillAt[journalRecord](filepath.Join(output, journalFileName))
	if err != nil {
		return fmt.Errorf("create scan journal: %w", err)
	}
	defer journal.Close()

	for _, resource := range inventory.Resources() {
		record := journalRecord{Name: resource.Name, Scope: resource.Scope.String()}
		if err := journal.Append(record); err != nil {
			return fmt.Errorf("write scan journal: %w", err)
		}
	}

	slog.Debug("persisted scan results", "dir", output, "resources", inventory.Len())

	return nil
}

// journalRecord is the gob-encodable journal shape of one resource.
type journalRecord struct {
	Name  string
	Scope string
}

// buildHierarchy constructs the scope hierarchy for a command invocation
// and selects the starting scope.
func buildHierarchy(scopesFile, classpath, scopeName string) (adapter.ScopeHierarchyAdapter, *m.Scope, error) {
	var hierarchy *adapter.StaticScopeHierarchy

	if scopesFile != "" {
		loaded, err := adapter.LoadScopeHierarchy(scopesFile)
		if err != nil {
			return nil, nil, err
		}

		hierarchy = loaded
	} else {
		if classpath == "" {
			classpath = os.Getenv("CLASSPATH")
		}

		hierarchy = adapter.NewFlatHierarchy("classpath", classpath)
	}

	scope := hierarchy.Leaf()
	if scopeName != "" {
		scope = hierarchy.ScopeByName(scopeName)
		if scope == nil {
			return nil, nil, fmt.Errorf("unknown scope %q", scopeName)
		}
	}

	return hierarchy, scope, nil
}

// filterInventory drops resources whose name matches any exclude pattern.
func filterInventory(inventory *m.Inventory, patterns []string) (*m.Inventory, error) {
	if len(patterns) == 0 {
		return inventory, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	var kept []m.Resource

	for _, resource := range inventory.Resources() {
		excluded := false

		for _, re := range compiled {
			if re.MatchString(resource.Name) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, resource)
		}
	}

	return m.NewInventory(kept), nil
}
