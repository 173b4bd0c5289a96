// Package snapshot persists a varbvs.State so a later run can warm-start from
// it.
//
// Layout of a snapshot stream:
//
//	offset  size  field
//	0       4     magic "VBVS"
//	4       1     format version (1)
//	5       ...   zstd frame holding, little-endian:
//	                uint64 n, uint64 p,
//	                p × float64 Alpha, p × float64 Mu, n × float64 Xr
//
// The zstd frame carries its own content checksum, so corruption of the
// payload surfaces as ErrCorrupt on Decode. Decode also rejects values a pass
// would never produce (Alpha outside [0,1], non-finite numbers).
//
// Decode returns Xr exactly as stored; callers that load a snapshot against a
// different design matrix should call State.Refit before the next pass.
package snapshot
