// SPDX-License-Identifier: EPL-2.0

// Package wavfile writes mono 16-bit WAV fixtures for tests.
package wavfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audaug/formats/wav"
)

// Write stores samples as a mono 16-bit WAV file named name inside dir and
// returns its path. Intermediate directories are created as needed.
func Write(t testing.TB, dir, name string, sampleRate int, samples []float32) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %q: %v", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %q: %v", path, err)
	}
	defer f.Close()

	if err := wav.WriteMono16(f, sampleRate, samples); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}

	return path
}
