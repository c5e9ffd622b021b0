// Package segment computes intro/loop/outro byte regions for a music track.
//
// The calculator is a pure function over the track's raw data size and byte
// rate. Both intro and outro get a fixed six-second baseline; the intro gets
// a small extra allowance and the loop takes whatever remains. Tracks too
// short for the baseline fall back to a proportional 10/80/10 split so the
// regions always cover the data exactly.
//
// Every byte quantity derived from a seconds value truncates toward zero.
// Intro and outro are rounded independently and the loop is computed as a
// remainder, so rounding error lands in the loop region and the intro/outro
// boundaries stay sample aligned.
package segment
