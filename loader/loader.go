// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"
	"os"

	"github.com/ik5/audaug"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/formats/aiff"
	"github.com/ik5/audaug/formats/mp3"
	"github.com/ik5/audaug/formats/vorbis"
	"github.com/ik5/audaug/formats/wav"
)

const defaultBufferSize = 4096

// Loader returns the audio at path as mono float32 samples at sampleRate.
type Loader interface {
	Load(path string, sampleRate int) ([]float32, error)
}

// DefaultRegistry returns a registry with every decoder in this module.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// File loads audio straight from disk.
type File struct {
	reg        *audio.Registry
	bufferSize int
}

// NewFile returns a File decoding through reg, or DefaultRegistry when reg
// is nil.
func NewFile(reg *audio.Registry) *File {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &File{reg: reg, bufferSize: defaultBufferSize}
}

// Registry returns the registry File decodes through.
func (f *File) Registry() *audio.Registry { return f.reg }

func (f *File) Load(path string, sampleRate int) ([]float32, error) {
	dec, err := f.reg.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer src.Close()

	samples, err := audaug.ReadMono(src, sampleRate, f.bufferSize)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return samples, nil
}
