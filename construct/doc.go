// Package construct builds topology from scratch: wires and faces from
// raw points, the primitive solids (box, cylinder, cone, sphere), and
// the two sweep operations (Extrude, Revolve) that turn a planar
// profile face into a solid.
//
// Every operation here follows the same shape: a small struct holding
// the operation's parameters, built with New, and run with Execute
// against a *topo.Store. Execute never panics; it returns an
// OperationError on invalid input (wrapping a sentinel error where the
// package defines one for the cause), and otherwise
// mutates the store and returns the Id of what it built.
package construct
