// Package capability reports the host's vector-extension support, the same
// CPU-feature probe the teacher's simd package gates hot-path dispatch on
// (simd.hasAVX2), but used here only to annotate the CLI run report: the
// inference engine's bitset operations are fixed-width uint64-limb
// arithmetic, not a SIMD dispatch target at the sizes spec.md bounds IC to.
package capability

import (
	"log/slog"

	"golang.org/x/sys/cpu"
)

// Report is a snapshot of the vector extensions the process observed at
// startup.
type Report struct {
	AMD64   bool
	ARM64   bool
	HasAVX2 bool
	HasSSE2 bool
	HasNEON bool
}

// Probe reads the process-wide CPU feature flags golang.org/x/sys/cpu
// populates at init time.
func Probe() Report {
	return Report{
		AMD64:   cpu.X86.HasAVX2 || cpu.X86.HasSSE2,
		ARM64:   cpu.ARM64.HasASIMD,
		HasAVX2: cpu.X86.HasAVX2,
		HasSSE2: cpu.X86.HasSSE2,
		HasNEON: cpu.ARM64.HasASIMD,
	}
}

// LogValue renders the report as a slog group, so a single
// logger.Info("cpu", "features", r) call surfaces the avx2, sse2 and neon
// flags; the AMD64 and ARM64 summary fields are not included.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("avx2", r.HasAVX2),
		slog.Bool("sse2", r.HasSSE2),
		slog.Bool("neon", r.HasNEON),
	)
}
