// Package mazegen generates connected mazes on a grid.Grid with eight
// distinct algorithms behind a single Generate dispatch.
//
// What
//
//   - Algorithm enum: Kruskal, Prim, Wilson, RecursiveDivision, Braided,
//     Cellular, HuntAndKill, SpiralBacktracker.
//   - Generate(size, algo, opts...) returns a grid satisfying the engine
//     invariants: exactly one Start and one End (never on a Wall) and every
//     open cell reachable from Start.
//   - A connectivity repair pass runs unconditionally after every algorithm:
//     flood-fill from Start, bridge the nearest unreached region with an
//     L-corridor, repeat until one region remains. For carvers it is a
//     no-op; for Cellular it is load-bearing.
//
// Why
//
//   - Kruskal, Prim, Wilson, HuntAndKill and SpiralBacktracker produce
//     perfect mazes (exactly one path between any two open cells) with
//     different texture biases; Wilson's sampling is perfectly uniform.
//   - RecursiveDivision and Braided deliberately add loops for multi-path
//     mazes; Cellular produces organic caverns.
//
// Determinism
//
//	All randomness flows through one *rand.Rand. WithSeed(s) makes two runs
//	of the same size and algorithm byte-identical, which the tests rely on.
//
// Complexity (n = side length)
//
//   - Kruskal: O(n² log n) (edge sort)
//   - Others:  O(n²) expected (HuntAndKill's raster hunt is the outlier
//     worst case)
//
// Usage
//
//	g, err := mazegen.Generate(21, mazegen.Wilson, mazegen.WithSeed(42))
//	if err != nil {
//	    // ErrInvalidSize or ErrUnknownAlgorithm
//	}
//	fmt.Println(g) // ASCII dump
//
// Errors
//
//   - ErrInvalidSize       if size < grid.MinSize.
//   - ErrUnknownAlgorithm  if the Algorithm value is outside the enum.
package mazegen
