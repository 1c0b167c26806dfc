// Package tables detects tabular data in runs of reconstructed lines, even
// though the source pages carry no table markup at all.
//
// Detection is purely spatial: a line becomes a table-row candidate when it
// shows pipe characters, regular inter-word spacing, or a narrow width split
// into short segments. Consecutive candidates accumulate into runs, and runs
// of at least two vertically close lines become tables. Column boundaries
// are recovered by one-dimensional clustering of word left edges across the
// run (see [ClusterColumns]).
//
// Lines consumed by a table are reported by index so the caller can exclude
// them from the text pipeline; correlation is by line identity, never by
// text equality, so duplicate line texts cannot be mismatched.
package tables
