// SPDX-License-Identifier: EPL-2.0

package corpus

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audaug/audio"
)

type nopDecoder struct{}

func (nopDecoder) Decode(r io.Reader) (audio.Source, error) { return nil, nil }

func registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", nopDecoder{})
	reg.Register("ogg", nopDecoder{})
	return reg
}

func touch(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root,
		"b.wav",
		"a.WAV",
		"readme.txt",
		"sub/deeper/c.ogg",
		"sub/d.mp3",
		".hidden/e.wav",
		"sub/.f.wav",
		"noext",
	)

	got, err := Scan(root, registry())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a.WAV"),
		filepath.Join(root, "b.wav"),
		filepath.Join(root, "sub/deeper/c.ogg"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScan_SingleFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root, "only.wav")
	path := filepath.Join(root, "only.wav")

	got, err := Scan(path, registry())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !slices.Equal(got, []string{path}) {
		t.Errorf("Scan() = %v, want [%s]", got, path)
	}
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	empty := t.TempDir()
	touch(t, empty, "readme.txt")

	tests := []struct {
		name    string
		root    string
		wantErr error
	}{
		{"nothing decodable", empty, ErrNoFiles},
		{"missing root", filepath.Join(empty, "nope"), fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Scan(tt.root, registry()); !errors.Is(err, tt.wantErr) {
				t.Errorf("Scan() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestScanAll_KeepsRootOrder(t *testing.T) {
	t.Parallel()

	first, second := t.TempDir(), t.TempDir()
	touch(t, first, "z.wav")
	touch(t, second, "a.wav")

	got, err := ScanAll([]string{first, second}, registry())
	if err != nil {
		t.Fatalf("ScanAll() error = %v", err)
	}
	want := []string{filepath.Join(first, "z.wav"), filepath.Join(second, "a.wav")}
	if !slices.Equal(got, want) {
		t.Errorf("ScanAll() = %v, want %v", got, want)
	}
}
