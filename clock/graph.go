package clock

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type NodeKind uint8

const (
	KindSource NodeKind = iota
	KindGenerator
	KindChannel
)

func (k NodeKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindGenerator:
		return "generator"
	default:
		return "channel"
	}
}

// Node ids are partitioned by kind.
const (
	generatorNodeBase = 100
	channelNodeBase   = 200
)

// Node is an oscillator, generator or channel of a clock tree.
type Node struct {
	Kind      NodeKind
	Name      string
	Frequency Hertz
	id        int64
}

func (n *Node) ID() int64 {
	return n.id
}

func (n *Node) DOTID() string {
	return n.Name
}

func (n *Node) Attributes() []encoding.Attribute {
	label := n.Name
	if n.Frequency != 0 {
		label += " (" + n.Frequency.String() + ")"
	}
	shape := map[NodeKind]string{
		KindSource:    "ellipse",
		KindGenerator: "box",
		KindChannel:   "plaintext",
	}[n.Kind]
	return []encoding.Attribute{
		{Key: "label", Value: label},
		{Key: "shape", Value: shape},
	}
}

// edge feeds one node into another. Generator inputs carry their divider.
type edge struct {
	from, to *Node
	divider  uint32
}

func (e edge) From() graph.Node         { return e.from }
func (e edge) To() graph.Node           { return e.to }
func (e edge) ReversedEdge() graph.Edge { return edge{from: e.to, to: e.from, divider: e.divider} }

func (e edge) Attributes() []encoding.Attribute {
	if e.divider <= 1 {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("/%d", e.divider)}}
}

// Tree is the clock tree as a directed graph in which every edge points from a clock towards what
// it drives. A channel feeding a multiplier points at the multiplier's output.
type Tree struct {
	g *simple.DirectedGraph
}

func NewTree() *Tree {
	return &Tree{g: simple.NewDirectedGraph()}
}

// Graph returns the underlying graph.
func (t *Tree) Graph() graph.Directed {
	return t.g
}

func (t *Tree) node(kind NodeKind, id int64, name string) *Node {
	if n := t.g.Node(id); n != nil {
		return n.(*Node)
	}
	n := &Node{Kind: kind, Name: name, id: id}
	t.g.AddNode(n)
	return n
}

func (t *Tree) source(src Source) *Node {
	n := t.node(KindSource, int64(src), src.String())
	n.Frequency = src.Frequency()
	return n
}

func (t *Tree) generator(id GeneratorID) *Node {
	return t.node(KindGenerator, generatorNodeBase+int64(id), id.String())
}

func (t *Tree) channel(ch ChannelID) *Node {
	return t.node(KindChannel, channelNodeBase+int64(ch), ch.String())
}

// SetGenerator records generator id dividing src down to freq.
func (t *Tree) SetGenerator(id GeneratorID, src Source, divider uint32, freq Hertz) error {
	to := t.generator(id)
	to.Frequency = freq

	var from *Node
	if src == SourceGCLKGEN1 {
		if id == GCLK1 {
			return errors.Wrap(ErrClockLoop, "GCLK1 sourced from itself")
		}
		from = t.generator(GCLK1)
	} else {
		from = t.source(src)
	}
	t.g.SetEdge(edge{from: from, to: to, divider: divider})
	return nil
}

// SetChannel records channel ch running from generator gen at freq.
func (t *Tree) SetChannel(ch ChannelID, gen GeneratorID, freq Hertz) {
	to := t.channel(ch)
	to.Frequency = freq
	t.g.SetEdge(edge{from: t.generator(gen), to: to})

	switch ch {
	case DFLL48:
		t.g.SetEdge(edge{from: to, to: t.source(SourceDFLL48M)})
	case FDPLL:
		t.g.SetEdge(edge{from: to, to: t.source(SourceDPLL96M)})
	}
}

// Order returns the nodes in an order in which they can be brought up: every node comes after
// the nodes that drive it. Nodes that do not depend on each other are ordered by kind and id.
func (t *Tree) Order() ([]Node, error) {
	sorted, err := topo.SortStabilized(t.g, func(nodes []graph.Node) {
		sort.Slice(nodes, func(i, j int) bool {
			return nodes[i].ID() < nodes[j].ID()
		})
	})
	if err != nil {
		var loops []string
		if unorderable, ok := err.(topo.Unorderable); ok {
			for _, component := range unorderable {
				for _, n := range component {
					loops = append(loops, n.(*Node).Name)
				}
			}
		}
		return nil, errors.Wrapf(ErrClockLoop, "%v", loops)
	}

	nodes := make([]Node, len(sorted))
	for i, n := range sorted {
		nodes[i] = *n.(*Node)
	}
	return nodes, nil
}

// MarshalDOT encodes the tree in the Graphviz DOT language.
func (t *Tree) MarshalDOT(name string) ([]byte, error) {
	return dot.Marshal(t.g, name, "", "\t")
}

// Tree returns the clock tree the controller has configured so far.
func (c *Controller) Tree() *Tree {
	t := NewTree()
	for id, freq := range c.freqs {
		if !c.isConfigured(GeneratorID(id)) {
			continue
		}
		// Sources are validated when the generator is configured.
		_ = t.SetGenerator(GeneratorID(id), c.sources[id], c.dividers[id], freq)
	}
	for _, ch := range c.used.Channels() {
		if ch == DFLL48 && !c.reference.oscillator() {
			continue
		}
		gen := c.routes[ch]
		t.SetChannel(ch, gen, c.freqs[gen])
	}
	return t
}
