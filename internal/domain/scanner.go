package domain

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"classwalk.dev/pkg/classwalk/internal/adapter"
	m "classwalk.dev/pkg/classwalk/internal/model"
)

// Scanner discovers every resource reachable from a loader scope: the
// flattened search-path entries plus the companion references their archive
// manifests declare, each scanned at most once.
type Scanner interface {
	// ScanFromRoot flattens the hierarchy rooted at scope and scans every
	// owned entry. Cancellation stops in-flight work and returns the
	// partial inventory accumulated so far without an error.
	ScanFromRoot(ctx context.Context, scope *m.Scope) (*m.Inventory, error)

	// ScanEntry scans one entry attributed to scope into a fresh state,
	// usable on its own for targeted queries and tests.
	ScanEntry(ctx context.Context, entry m.Entry, scope *m.Scope) *m.Inventory
}

// ScannerOption configures a Scanner.
type ScannerOption func(*scanner)

// WithWorkers enables scanning independent top-level entries through a
// bounded worker pool. Values below 2 keep the scan sequential.
func WithWorkers(workers int) ScannerOption {
	return func(s *scanner) {
		s.workers = workers
	}
}

// WithProgress registers an observer invoked after each entry finishes
// scanning, for progress display.
func WithProgress(fn func(entry m.Entry)) ScannerOption {
	return func(s *scanner) {
		s.progress = fn
	}
}

type scanner struct {
	fs        adapter.ClasspathFSAdapter
	archive   adapter.ArchiveAdapter
	hierarchy adapter.ScopeHierarchyAdapter
	workers   int
	progress  func(entry m.Entry)
}

// NewScanner constructs a Scanner backed by the provided filesystem,
// archive and hierarchy adapters.
func NewScanner(
	fs adapter.ClasspathFSAdapter,
	archive adapter.ArchiveAdapter,
	hierarchy adapter.ScopeHierarchyAdapter,
	options ...ScannerOption,
) Scanner {
	s := &scanner{
		fs:        fs,
		archive:   archive,
		hierarchy: hierarchy,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// resourceKey identifies a resource for deduplication: racing branches that
// discover the same (name, scope) pair collapse to one record.
type resourceKey struct {
	name  string
	scope *m.Scope
}

// scanState is the transient state of one top-level scan: the set of
// already-visited entries and the accumulated resource records. It lives
// for exactly one ScanFromRoot call and is never shared across calls.
type scanState struct {
	mu        sync.Mutex
	visited   map[m.Entry]struct{}
	resources map[resourceKey]m.Resource
}

func newScanState() *scanState {
	return &scanState{
		visited:   make(map[m.Entry]struct{}),
		resources: make(map[resourceKey]m.Resource),
	}
}

// markVisited records the entry as visited, reporting false when it was
// seen before. Marking happens before any I/O on the entry, which is what
// terminates manifest reference cycles.
func (st *scanState) markVisited(entry m.Entry) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, seen := st.visited[entry]; seen {
		return false
	}

	st.visited[entry] = struct{}{}

	return true
}

func (st *scanState) addResource(resource m.Resource) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.resources[resourceKey{name: resource.Name, scope: resource.Scope}] = resource
}

func (st *scanState) inventory() *m.Inventory {
	st.mu.Lock()
	defer st.mu.Unlock()

	resources := make([]m.Resource, 0, len(st.resources))
	for _, resource := range st.resources {
		resources = append(resources, resource)
	}

	return m.NewInventory(resources)
}

// ScanFromRoot implements Scanner.
func (s *scanner) ScanFromRoot(ctx context.Context, scope *m.Scope) (*m.Inventory, error) {
	ownership, err := Flatten(s.hierarchy, scope)
	if err != nil {
		return nil, err
	}

	state := newScanState()

	if s.workers > 1 {
		s.scanParallel(ctx, state, ownership)
	} else {
		for _, entry := range ownership.Entries() {
			s.scan(ctx, state, entry, ownership.Owner(entry))
		}
	}

	return state.inventory(), nil
}

// scanParallel runs the independent top-level entries through a bounded
// worker pool. Recursion below each entry stays sequential; the shared
// state keeps the dedup invariants intact across racing branches.
func (s *scanner) scanParallel(ctx context.Context, state *scanState, ownership *m.EntryOwnership) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for _, entry := range ownership.Entries() {
		scope := ownership.Owner(entry)

		group.Go(func() error {
			s.scan(groupCtx, state, entry, scope)
			return nil
		})
	}

	// Workers never return errors; recoverable conditions are skipped and
	// cancellation just stops them early.
	_ = group.Wait()
}

// ScanEntry implements Scanner.
func (s *scanner) ScanEntry(ctx context.Context, entry m.Entry, scope *m.Scope) *m.Inventory {
	state := newScanState()
	s.scan(ctx, state, entry, scope)

	return state.inventory()
}

// scan processes one entry: a no-op if the entry was already visited,
// otherwise it enumerates the entry's resources and follows any manifest
// companion references under the same owning scope. The entry is
// canonicalized before the visited check so aliased spellings of one
// physical location are scanned at most once.
func (s *scanner) scan(ctx context.Context, state *scanState, entry m.Entry, scope *m.Scope) {
	if ctx.Err() != nil {
		return
	}

	entry = entry.Canonical()

	if !state.markVisited(entry) {
		return
	}

	if !s.fs.Exists(entry) {
		slog.Debug("skipping missing entry", "entry", entry)
		return
	}

	if s.fs.IsDir(entry) {
		s.scanDirectory(state, entry, scope)
	} else {
		s.scanArchive(ctx, state, entry, scope)
	}

	if s.progress != nil {
		s.progress(entry)
	}
}

func (s *scanner) scanDirectory(state *scanState, entry m.Entry, scope *m.Scope) {
	files, err := s.fs.WalkFiles(entry)
	if err != nil {
		slog.Debug("skipping unreadable directory", "entry", entry, "error", err)
		return
	}

	for _, name := range files {
		state.addResource(Classify(name, scope))
	}
}

func (s *scanner) scanArchive(ctx context.Context, state *scanState, entry m.Entry, scope *m.Scope) {
	items, err := s.archive.Entries(entry)
	if err != nil {
		// Not actually a readable archive: contributes nothing.
		slog.Debug("skipping unreadable archive", "entry", entry, "error", err)
		return
	}

	for _, item := range items {
		// Directory markers and the manifest itself carry no resource.
		if item.IsDir || item.Name == m.ManifestPath {
			continue
		}

		state.addResource(Classify(item.Name, scope))
	}

	manifest, err := s.archive.Manifest(entry)
	if err != nil {
		slog.Debug("skipping unreadable manifest", "entry", entry, "error", err)
		return
	}

	// Companion references inherit the declaring archive's owning scope.
	for _, companion := range ManifestEntries(entry, manifest) {
		s.scan(ctx, state, companion, scope)
	}
}
