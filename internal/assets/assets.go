// Package assets bundles the feed's images into the binary and resolves them
// by name for the thumbnail pipeline and the detail screen.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
)

const (
	imageDir = "images"
	imageExt = ".png"
)

// ErrAssetNotFound is returned when no bundled asset matches a name
var ErrAssetNotFound = errors.New("asset not found")

//go:embed images/*.png
var images embed.FS

// Bundle resolves asset names to embedded image bytes
type Bundle struct {
	fsys fs.FS
}

// NewBundle creates a bundle over the embedded images
func NewBundle() *Bundle {
	return &Bundle{fsys: images}
}

// NewBundleFS creates a bundle over an arbitrary filesystem laid out like
// the embedded one (images/<name>.png)
func NewBundleFS(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

// Resolve returns the raw bytes for the named asset
func (b *Bundle) Resolve(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}

	data, err := fs.ReadFile(b.fsys, path.Join(imageDir, name+imageExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("failed to read asset %q: %w", name, err)
	}
	return data, nil
}

// Resource returns the named asset as a Fyne resource
func (b *Bundle) Resource(name string) (fyne.Resource, error) {
	data, err := b.Resolve(name)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(name+imageExt, data), nil
}

// Names returns the sorted names of all bundled assets
func (b *Bundle) Names() []string {
	entries, err := fs.ReadDir(b.fsys, imageDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != imageExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), imageExt))
	}
	sort.Strings(names)
	return names
}
