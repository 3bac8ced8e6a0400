// Package topo is the boundary-representation topology layer of the
// kernel: vertices, edges, wires, faces, shells and solids, addressed
// by opaque Id values and held in a single-threaded Store.
//
// Topology never owns geometry by embedding — every entity carries
// only the identifiers of the entities beneath it (an Edge names its
// Curve by value because curves are immutable value types from the
// geom package, but a Wire names its Edges by Id, a Face names its
// Wires by Id, and so on). This keeps the store a flat arena: deleting
// or replacing one entity never requires walking the graph to fix up
// embedded copies.
//
// Store is not safe for concurrent use. The kernel's construction and
// editing operations are synchronous, single-threaded transformations
// of one Store at a time; callers needing concurrent access must
// serialize it themselves.
package topo
