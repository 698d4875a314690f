// Package mmap provides read-only memory-mapped file access.
//
// Mapping a file avoids copying artifact bytes through kernel buffers,
// which keeps repeated reads of graph descriptions and capability sets
// cheap.
//
//	m, err := mmap.Open("edge.vxg")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// Unix platforms use mmap(2) with madvise(2) for access hints; Windows
// uses CreateFileMapping/MapViewOfFile (hints are a no-op).
//
// Mapping is safe for concurrent reads. Close is idempotent, but
// callers must ensure no goroutine touches Bytes() after Close
// returns.
package mmap
