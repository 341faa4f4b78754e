// SPDX-License-Identifier: MIT

package rowwise

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose unexported per-row kernels and the resolved Options to
//     rowwise_test only; the file is compiled exclusively by `go test`.
//   - Keep ALL test-only bridges co-located here.

var (
	// ExportedMeanRow exposes meanRow.
	ExportedMeanRow = meanRow
	// ExportedSortRow exposes sortRow.
	ExportedSortRow = sortRow
	// ExportedRankRow exposes rankRow.
	ExportedRankRow = rankRow
	// ExportedForEachChunk exposes forEachChunk.
	ExportedForEachChunk = forEachChunk
	// ExportedGatherOptions exposes gatherOptions.
	ExportedGatherOptions = gatherOptions
)

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Workers        int
	ChunkRows      int
	RestoreMissing bool
	HasLogger      bool
}

// Snapshot returns the exported view of o.
func (o Options) Snapshot() OptionsSnapshot {
	return OptionsSnapshot{
		Workers:        o.workers,
		ChunkRows:      o.chunkRows,
		RestoreMissing: o.restoreMissing,
		HasLogger:      o.logger != nil,
	}
}
