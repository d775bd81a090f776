// Package dedisp provides brute-force reference dedispersion for
// channelized radio data.
//
// Direct shifts every channel by its rounded dispersive delay and sums,
// costing O(Nchan * Ndm * Ntime); it is the oracle the fast transform in
// package fdmt approximates, and the cheaper choice for very small
// blocks or trial counts. Coherent replaces the rounded shifts with
// fractional-sample delays applied through an FFT phase ramp.
//
// All routines use the same circular-time convention as package fdmt:
// shifted samples wrap around the block edge.
package dedisp
