// Package fdmt implements the fast dispersion-measure transform (FDMT)
// for channelized radio-telescope data.
//
// The transform takes a block of intensity samples laid out as (channel,
// time) and produces a block laid out as (trial, time), where each trial
// row approximates the dedispersed, channel-summed signal at one trial
// dispersion measure. The divide-and-conquer recursion splits the band at
// the frequency where half of its dispersion delay has accumulated,
// transforms both halves, and combines them with a shift-and-add merge,
// giving O(N log N) work instead of brute-force per-channel-per-DM
// shifting (available as a reference in package dedisp).
//
// The package performs no I/O: callers supply a fully buffered block plus
// scalar instrument parameters and receive the transformed block. Blocks
// are treated as circular in time, so edge samples borrow from the
// opposite end; this approximation holds while dispersion delays stay
// small relative to the block length.
package fdmt
