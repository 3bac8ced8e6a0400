package boolean

// Op names a set operation.
type Op int

const (
	OpUnion Op = iota
	OpSubtract
	OpIntersect
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "Union"
	case OpSubtract:
		return "Subtract"
	case OpIntersect:
		return "Intersect"
	default:
		return "unknown"
	}
}

// Source names which operand a fragment was cut from.
type Source int

const (
	SourceA Source = iota
	SourceB
)

// Classification is a fragment's position relative to the opposite solid.
type Classification int

const (
	Outside Classification = iota
	Inside
	OnBoundary
)

func (c Classification) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	default:
		return "unknown"
	}
}

// Decision is the outcome of looking a (source, classification, op)
// triple up in the selection table.
type Decision int

const (
	Discard Decision = iota
	Keep
	KeepFlipped
)

// Select implements the fixed selection table: for a fragment cut from
// source, classified relative to the opposite solid, decide whether it
// survives op and, if so, whether its orientation must flip.
//
// A-side fragments never flip (A's outward normal is already correct
// for Union and Intersect, and for Subtract an A-fragment that
// survives was never inside B in the first place). A surviving
// B-fragment needs flipping only for Subtract's inside case, where B's
// material becomes the new cavity wall and so must face the opposite
// way from how it faced as part of B.
func Select(source Source, class Classification, op Op) Decision {
	switch source {
	case SourceA:
		switch class {
		case Outside:
			if op == OpIntersect {
				return Discard
			}
			return Keep
		case Inside:
			if op == OpIntersect {
				return Keep
			}
			return Discard
		case OnBoundary:
			return Keep
		}
	case SourceB:
		switch class {
		case Outside:
			if op == OpUnion {
				return Keep
			}
			return Discard
		case Inside:
			switch op {
			case OpSubtract:
				return KeepFlipped
			case OpIntersect:
				return Keep
			default:
				return Discard
			}
		case OnBoundary:
			return Discard
		}
	}
	return Discard
}
