// Package extrema locates local extrema in sampled sequences and provides the
// sliding-window views used to compute them.
//
// [Local] treats index i as an extremum when it holds the first maximum (or
// minimum) of the window of the given length centered on i, with the sequence
// edge-padded so boundary indices see a full window. Wider windows therefore
// enforce a larger minimum separation between reported extrema:
//
//	idx, err := extrema.Local(row, 2*width, extrema.Maxima)
//
// [LocalMaxima] is the strict neighbor test without a separation constraint.
package extrema
