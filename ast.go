package vmre

// NodeType identifies the type of AST node.
type NodeType int

const (
	NodeLiteral NodeType = iota
	NodeConcat
	NodeAlternate
	NodeQuestion
	NodeStar
	NodePlus
	NodeAnyChar
)

// Node is the base interface for AST nodes.
type Node interface {
	Type() NodeType
}

// Literal matches a single rune.
type Literal struct {
	Rune rune
}

func (n *Literal) Type() NodeType { return NodeLiteral }

// Concat matches a sequence of nodes in order.
type Concat struct {
	Nodes []Node
}

func (n *Concat) Type() NodeType { return NodeConcat }

// Alternate matches either Left or Right, Left tried first.
// Chains like a|b|c parse right-leaning: Alternate(a, Alternate(b, c)).
type Alternate struct {
	Left  Node
	Right Node
}

func (n *Alternate) Type() NodeType { return NodeAlternate }

// Question matches its body zero or one time, greedy.
type Question struct {
	Body Node
}

func (n *Question) Type() NodeType { return NodeQuestion }

// Star matches its body zero or more times, greedy.
type Star struct {
	Body Node
}

func (n *Star) Type() NodeType { return NodeStar }

// Plus matches its body one or more times, greedy.
type Plus struct {
	Body Node
}

func (n *Plus) Type() NodeType { return NodePlus }

// AnyChar matches any single rune. It never matches at end of input.
type AnyChar struct{}

func (n *AnyChar) Type() NodeType { return NodeAnyChar }
