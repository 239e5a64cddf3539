// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

// PathRef is a reference to a path in a ResourcePool.
type PathRef uint32

// ResourcePool stores the paths referenced by paint commands. Paths are
// cloned on the way in, so a Recording never shares storage with the
// Recorder that produced it.
type ResourcePool struct {
	paths []*Path
}

// NewResourcePool returns an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{paths: make([]*Path, 0, 64)}
}

// AddPath stores a copy of path and returns its reference.
func (p *ResourcePool) AddPath(path *Path) PathRef {
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) GetPath(ref PathRef) *Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of stored paths.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}
