// Package core provides the immutable valve-network Graph: labelled nodes
// with rewards, connected by directed, unweighted edges.
//
// Construction is two-phase and happens once per problem instance:
//
//	b := core.NewBuilder()
//	aa, _ := b.AddNode("AA", 0)
//	b.AddNode("BB", 13)
//	b.AddEdge("AA", "BB")
//	b.AddEdge("BB", "AA")
//	g, index, err := b.Build()
//
// Indices are assigned in first-seen order (aa == 0 above) and the returned
// label → index map lets the caller resolve a start label afterwards.
// Edges are resolved at Build time; an edge naming an undeclared label,
// a duplicate label, or an empty label fails with an error wrapping
// ErrMalformedGraph that names the offending label.
//
// Once built, a Graph exposes read-only accessors (Len, Neighbors, Reward,
// ActiveSet, ...) and is safe to share between goroutines.
//
// FromRecords accepts the parser's per-line records directly.
package core
