package syntax

import "fmt"

// Process runs the ASTProcessor over a raw AST produced by the Parser: it
// desugars every bounded Repetition node into Concat/Union/Iteration trees
// (no engine-level counting survives to the NFA builder), normalizes
// Empty-absorbing nodes, and wraps the result in Group 0 so the overall
// match span is captured like any other group.
func Process(root Node) (Node, error) {
	u, err := process(root)
	if err != nil {
		return nil, err
	}
	return Group{Number: 0, U: u}, nil
}

func process(n Node) (Node, error) {
	switch v := n.(type) {
	case Empty:
		return v, nil
	case CharacterSet:
		return v, nil
	case BoundaryAssertion:
		return v, nil
	case Concat:
		u, err := process(v.U)
		if err != nil {
			return nil, err
		}
		w, err := process(v.V)
		if err != nil {
			return nil, err
		}
		return normalizeConcat(u, w), nil
	case Union:
		u, err := process(v.U)
		if err != nil {
			return nil, err
		}
		w, err := process(v.V)
		if err != nil {
			return nil, err
		}
		return normalizeUnion(u, w), nil
	case Repetition:
		u, err := process(v.U)
		if err != nil {
			return nil, err
		}
		return processRepetition(u, v.Min, v.Max, v.Pos)
	case Iteration:
		u, err := process(v.U)
		if err != nil {
			return nil, err
		}
		return normalizeIteration(u), nil
	case Group:
		u, err := process(v.U)
		if err != nil {
			return nil, err
		}
		return Group{Number: v.Number, Name: v.Name, U: u}, nil
	default:
		panic(fmt.Sprintf("syntax: unhandled AST node type %T in ASTProcessor", n))
	}
}

// processRepetition implements the three-way bounded-repetition desugaring:
//
//	x{0,∞}  -> Iteration(x)
//	x{m,∞}  -> Concat(x^m, Iteration(x))
//	x{m,n}  -> Concat(x^m, prefix(x, n-m))
func processRepetition(u Node, min int, max *int, pos int) (Node, error) {
	if max == nil {
		if min == 0 {
			return normalizeIteration(u), nil
		}
		return normalizeConcat(repeatConcat(u, min), normalizeIteration(u)), nil
	}
	n := *max
	if n < min {
		return nil, &TokenizerError{Pos: pos, Msg: fmt.Sprintf("repetition bounds out of order: {%d,%d}", min, n)}
	}
	return normalizeConcat(repeatConcat(u, min), prefixUnion(u, n-min)), nil
}

// repeatConcat builds x^m: a left-nested Concat of m independent copies of
// u (Empty when m == 0). Each copy is cloned so no two parents share a
// child node.
func repeatConcat(u Node, m int) Node {
	var node Node = Empty{}
	for i := 0; i < m; i++ {
		node = normalizeConcat(node, u.Clone())
	}
	return node
}

// prefixUnion builds "0 to k copies of u":
//
//	prefix(x, 0) = Empty
//	prefix(x, k) = Union(Empty, Concat(x, prefix(x, k-1)))
func prefixUnion(u Node, k int) Node {
	if k <= 0 {
		return Empty{}
	}
	inner := prefixUnion(u, k-1)
	return normalizeUnion(Empty{}, normalizeConcat(u.Clone(), inner))
}

func normalizeConcat(u, v Node) Node {
	if _, ok := u.(Empty); ok {
		return v
	}
	if _, ok := v.(Empty); ok {
		return u
	}
	return Concat{U: u, V: v}
}

func normalizeUnion(u, v Node) Node {
	_, uEmpty := u.(Empty)
	_, vEmpty := v.(Empty)
	if uEmpty && vEmpty {
		return Empty{}
	}
	return Union{U: u, V: v}
}

func normalizeIteration(u Node) Node {
	if _, ok := u.(Empty); ok {
		return Empty{}
	}
	return Iteration{U: u}
}
