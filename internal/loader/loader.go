// Package loader reads the compilation units named on the command line.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"toylang/internal/source"
)

// Ext is the source file extension picked up from directories.
const Ext = ".toy"

// Load reads every path in order. A directory contributes its *.toy files,
// sorted by name and not recursing into subdirectories. A path named twice
// is loaded once.
func Load(paths []string) ([]*source.File, error) {
	var files []*source.File
	seen := map[string]bool{}
	add := func(p string) error {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		if seen[abs] {
			return nil
		}
		seen[abs] = true
		f, err := readFile(p)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	}
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}
		found, err := sourcesIn(p)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no %s files in %s", Ext, p)
		}
		for _, fp := range found {
			if err := add(fp); err != nil {
				return nil, err
			}
		}
	}
	return files, nil
}

func sourcesIn(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func readFile(path string) (*source.File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return source.NewFile(filepath.ToSlash(path), string(b)), nil
}

// ObjectName is the object file the backend writes for a unit: the input's
// base name with .o appended, in the working directory.
func ObjectName(f *source.File) string {
	return filepath.Base(f.Name) + ".o"
}
