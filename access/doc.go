// Package access implements the access-strategy engine: zero-copy views
// that remap virtual coordinates onto a backing matrix.
//
// The access package provides:
//
//   - Strategy, the contract a coordinate remapping must satisfy: map a
//     virtual (row, col) to a physical one (or report that none exists)
//     and declare the virtual shape it presents. Strategies are pure and
//     shape-driven — they never read elements — which is what lets them
//     compose over a shape-only Observer without touching real data.
//   - View and MutView, read-only and read-write wrappers that route
//     every element access through a strategy. Views implement the
//     matrix capability contracts themselves, so they nest arbitrarily
//     and plug into iterators and derived operations unchanged.
//   - Observer, a dimension-only stand-in used to resolve the shape
//     effects of composed strategy chains.
//
// A view never copies or moves data: wrapping is O(1), and each element
// access costs the wrapped access plus the strategy's mapping rule
// (O(1) for every strategy in the catalog).
//
// The concrete strategies live in the strategy package.
package access
