// Package writers turns assemblies and overlap reports into serialized outputs.
//
// Design:
//   • Writers own all presentation choices (AGP/TPF/STR, text/JSON/JSONL).
//   • core packages stay domain-only; apps pick a writer by format name.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
