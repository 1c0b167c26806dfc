// Package layout implements the statistical and heuristic stages that turn
// raw positioned glyphs into classified semantic elements.
//
// The stages compose in a fixed order per page:
//
//   - [MetricsAnalyzer] derives a font/layout profile from the page's glyphs,
//     carrying values forward from the previous page when signal is missing.
//   - [WordGrouper] clusters glyphs into words by proximity relative to
//     font size.
//   - [LineGrouper] clusters words into lines by vertical banding relative
//     to the estimated line height.
//   - [Classifier] assigns each line a semantic type using ordered heuristic
//     rules and flags soft continuations.
//   - [ListNester] resolves list indentation into nesting depth.
//   - [Merger] coalesces adjacent same-type, same-style elements split
//     across lines.
//
// Every stage is a pure function of its inputs. Each has a Config struct
// with a DefaultXConfig constructor whose values reproduce the reference
// heuristics exactly.
package layout
