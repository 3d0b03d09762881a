//go:build amd64

package scan

import "golang.org/x/sys/cpu"

var hasAVX2 = cpu.X86.HasAVX2

// HasHardwareAccel reports whether the current CPU exposes the wide
// vector unit (AVX2) that bytes.IndexByte's assembly kernel switches to
// above its small-region threshold.
//
// Mirrors the teacher's websocket/mask_amd64.go capability probe
// (var hasAVX2 = cpu.X86.HasAVX2) verbatim in spirit; exposed here for
// diagnostics and metrics labeling rather than to pick between two
// scan implementations, since bytes.IndexByte already makes that choice
// internally for every region this package scans.
func HasHardwareAccel() bool {
	return hasAVX2
}
