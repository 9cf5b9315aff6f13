// Package writer emits device records as CSV.
//
// Output is a header row followed by one row per device, in pipeline
// order. The file is created only when there is at least one record;
// the caller decides whether to write at all.
package writer
