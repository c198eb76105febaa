// SPDX-License-Identifier: EPL-2.0

// Package loader turns audio files into mono float32 signals at a requested
// sample rate.
//
// File decodes through an audio.Registry keyed by file extension. Cache
// keeps recently decoded signals in an LRU so a noise corpus is decoded
// once per sample rate rather than once per augmentation:
//
//	c, err := loader.NewCache(loader.NewFile(nil), 256)
//	if err != nil {
//	    return err
//	}
//	if err := c.Warm(ctx, paths, 16000, 8); err != nil {
//	    return err
//	}
//	bn, err := noise.New(opts, c)
package loader
