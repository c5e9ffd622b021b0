// Command imusemap derives iMUSE looping metadata for game music tracks.
//
// It scans a directory for audio files, probes each with ffprobe, computes
// intro/loop/outro byte regions, and writes one .imp map per track for the
// downstream compressor. Subcommands cover batch generation, single-file
// inspection, environment status, run history, and configuration
// management.
package main
