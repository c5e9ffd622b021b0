// Package preflight runs environment checks before a batch: external
// binaries present, input directory readable, output and log directories
// writable. The status command surfaces the results; the generate command
// aborts on a failed required check.
package preflight
