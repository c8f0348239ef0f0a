package adapter

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"strings"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// ArchiveAdapter abstracts reading the contents and manifest metadata of an
// archive entry.
type ArchiveAdapter interface {
	// Entries lists every item contained in the archive, directory markers
	// included so the caller can skip them.
	Entries(entry m.Entry) ([]m.ArchiveItem, error)

	// Manifest reads and parses the archive's manifest. A missing manifest
	// is not an error; it yields (nil, nil).
	Manifest(entry m.Entry) (*m.Manifest, error)
}

// LocalArchiveAdapter reads zip-format archives (.jar, .zip) from disk.
type LocalArchiveAdapter struct{}

// NewLocalArchiveAdapter constructs a LocalArchiveAdapter.
func NewLocalArchiveAdapter() *LocalArchiveAdapter {
	return &LocalArchiveAdapter{}
}

// Entries lists the archive's items in archive order.
func (a *LocalArchiveAdapter) Entries(entry m.Entry) ([]m.ArchiveItem, error) {
	reader, err := zip.OpenReader(entry.FSPath())
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", entry, err)
	}
	defer reader.Close()

	items := make([]m.ArchiveItem, 0, len(reader.File))
	for _, file := range reader.File {
		items = append(items, m.ArchiveItem{
			Name:  file.Name,
			IsDir: file.FileInfo().IsDir() || strings.HasSuffix(file.Name, "/"),
		})
	}

	return items, nil
}

// Manifest reads META-INF/MANIFEST.MF from the archive and parses its main
// attribute section.
func (a *LocalArchiveAdapter) Manifest(entry m.Entry) (*m.Manifest, error) {
	reader, err := zip.OpenReader(entry.FSPath())
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", entry, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != m.ManifestPath {
			continue
		}

		content, openErr := file.Open()
		if openErr != nil {
			return nil, fmt.Errorf("open manifest in %s: %w", entry, openErr)
		}
		defer content.Close()

		return parseManifest(content)
	}

	return nil, nil
}

// parseManifest parses the main attribute section of a jar-format manifest.
// A line beginning with a single space continues the previous attribute
// value; the first blank line terminates the main section.
func parseManifest(r io.Reader) (*m.Manifest, error) {
	attributes := make(map[string]string)

	var lastKey string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}

		if strings.HasPrefix(line, " ") {
			if lastKey != "" {
				attributes[lastKey] += line[1:]
			}

			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		lastKey = strings.TrimSpace(key)
		attributes[lastKey] = strings.TrimLeft(value, " ")
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return &m.Manifest{Attributes: attributes}, nil
}
