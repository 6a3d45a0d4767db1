package ast

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// shapeRecord describes one node (or absent child) of a tree in pre-order.
// Absent children are recorded with kind NoKind.
type shapeRecord struct {
	Kind   int8
	Op     int8
	Value  int64
	Symbol uint32
}

type shape struct {
	Nodes []shapeRecord
}

// Fingerprint returns a structural hash of a tree. Two trees get the same
// fingerprint if they consist of the same variants, operators, values and
// symbol handles, in the same arrangement. Fingerprints of released nodes
// are the same as for nil.
func Fingerprint(tree Node) (string, error) {
	s := shape{Nodes: make([]shapeRecord, 0, 64)}
	stack := arraystack.New()
	stack.Push(walkStep{node: tree})
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(walkStep).node
		if absent(n) || n.base().released {
			s.Nodes = append(s.Nodes, shapeRecord{Kind: int8(NoKind)})
			continue
		}
		s.Nodes = append(s.Nodes, record(n))
		ch := children(n)
		for i := len(ch) - 1; i >= 0; i-- {
			stack.Push(walkStep{node: ch[i]})
		}
	}
	return structhash.Hash(s, 1)
}

func record(n Node) shapeRecord {
	r := shapeRecord{Kind: int8(n.Kind())}
	switch x := n.(type) {
	case *Number:
		r.Value = x.value
	case *SymbolRef:
		r.Symbol = uint32(x.symbol)
	case *SymbolDecl:
		r.Symbol = uint32(x.symbol)
	case *Unary:
		r.Op = int8(x.op)
	case *Binary:
		r.Op = int8(x.op)
	case *Assignment:
		r.Symbol = uint32(x.target)
	case *Call:
		r.Symbol = uint32(x.callee)
	case *FuncDef:
		r.Symbol = uint32(x.symbol)
	}
	return r
}
