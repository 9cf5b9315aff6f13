// Package export implements the device selection and deduplication core.
//
// The pipeline:
//   - Select keeps switch entities belonging to the configured vendor,
//     dropping availability/connectivity diagnostics
//   - Deduplicate collapses per-channel entities (relay_0, relay_1)
//     into one record per physical device
//   - First-seen-wins: the first entity for a device supplies the name,
//     and output preserves first-appearance order
package export
