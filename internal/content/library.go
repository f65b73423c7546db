package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// DefaultVariant is served when no variant is configured.
const DefaultVariant = "retention"

// ErrUnknownVariant is returned by Library.Get for names it does not hold.
var ErrUnknownVariant = errors.New("unknown content variant")

//go:embed variants/*.yaml
var embedded embed.FS

// Library holds every variant loaded from one source.
type Library struct {
	pages map[string]*Page
}

// Embedded loads the variants compiled into the binary.
func Embedded() (*Library, error) {
	return LoadFS(embedded, "variants")
}

// LoadDir loads every *.yaml file in dir.
func LoadDir(dir string) (*Library, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS loads every *.yaml file directly under dir in fsys.
func LoadFS(fsys fs.FS, dir string) (*Library, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing variants: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no variants found in %q", dir)
	}

	lib := &Library{pages: make(map[string]*Page, len(matches))}
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, dup := lib.pages[p.Name]; dup {
			return nil, fmt.Errorf("%s: variant %q defined twice", name, p.Name)
		}
		lib.pages[p.Name] = p
	}
	return lib, nil
}

// Get returns the named variant.
func (l *Library) Get(name string) (*Page, error) {
	p, ok := l.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownVariant, name, strings.Join(l.Names(), ", "))
	}
	return p, nil
}

// Names lists variant names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.pages))
	for n := range l.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
