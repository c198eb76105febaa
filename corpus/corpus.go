// SPDX-License-Identifier: EPL-2.0

// Package corpus finds noise recordings on disk.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/audaug/audio"
)

// ErrNoFiles is returned when a scan finds nothing decodable.
var ErrNoFiles = errors.New("no audio files found")

// Scan walks root recursively and returns, in lexical order, every regular
// file whose extension reg can decode. Hidden files and directories (names
// starting with a dot) are skipped. root may also name a single file.
func Scan(root string, reg *audio.Registry) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := path != root && strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || !d.Type().IsRegular() {
			return nil
		}
		if _, err := reg.Lookup(path); err == nil {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("scan %s: %w", root, ErrNoFiles)
	}

	slices.Sort(paths)
	return paths, nil
}

// ScanAll scans every root and concatenates the results, keeping the order
// of roots.
func ScanAll(roots []string, reg *audio.Registry) ([]string, error) {
	var all []string
	for _, root := range roots {
		paths, err := Scan(root, reg)
		if err != nil {
			return nil, err
		}
		all = append(all, paths...)
	}
	return all, nil
}
