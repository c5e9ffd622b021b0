// Package workflow drives a map-generation batch: discover input files,
// probe each one, compute its segment plan, and write the map document.
//
// Processing is strictly sequential with no shared state between files. A
// failure on one file is logged, journaled, and isolated; the batch
// continues with the next file. Only a missing external dependency, a
// concurrent run holding the batch lock, or an empty input directory abort
// the run as a whole.
package workflow
