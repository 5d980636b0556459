package ggsurface

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/kinetype/core"
	"github.com/pkg/errors"
)

// FrameTexture is a compositor.Texture for a Surface. It remembers update
// requests and writes the surface to numbered PNG files on Flush.
type FrameTexture struct {
	mu       sync.Mutex
	surface  *Surface
	dir      string
	requests int // update requests since the last flush
	total    int // update requests since creation
	frames   int // frames written
}

// NewFrameTexture creates a texture for surface. If dir is empty, Flush
// does not write files.
func NewFrameTexture(surface *Surface, dir string) *FrameTexture {
	return &FrameTexture{surface: surface, dir: dir}
}

// MarkNeedsUpdate records an update request.
func (t *FrameTexture) MarkNeedsUpdate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests++
	t.total++
}

// NeedsUpdate is true if an update has been requested since the last flush.
func (t *FrameTexture) NeedsUpdate() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests > 0
}

// Updates returns the number of update requests since creation.
func (t *FrameTexture) Updates() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Frames returns the number of frames written.
func (t *FrameTexture) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

// SetDir changes the output directory, creating it if necessary.
func (t *FrameTexture) SetDir(dir string) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return core.WrapError(errors.Wrap(err, "frame directory"), core.EINVALID,
				"cannot create frame directory %s", dir)
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dir = dir
	return nil
}

// Flush writes the surface to the next frame file, if an update has been
// requested. It returns the path of the file written, or "". Writing a frame
// without a surface fails with core.ENOSURFACE.
func (t *FrameTexture) Flush() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.requests == 0 {
		return "", nil
	}
	t.requests = 0
	if t.dir == "" {
		return "", nil
	}
	if t.surface == nil {
		return "", core.Error(core.ENOSURFACE, "no surface to write frame %d from", t.frames)
	}
	path := filepath.Join(t.dir, fmt.Sprintf("frame-%05d.png", t.frames))
	if err := t.surface.Context().SavePNG(path); err != nil {
		return "", core.WrapError(errors.Wrapf(err, "writing %s", path), core.EINTERNAL,
			"cannot write frame")
	}
	t.frames++
	tracer().Debugf("wrote %s", path)
	return path, nil
}
