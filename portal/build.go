package portal

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/core"
	"github.com/katalvlaran/areanav/grid"
)

// GroupEdge is one portal-connectivity edge by group id.
type GroupEdge struct {
	A, B     int
	Distance float64
}

// Graphs is the derived coarse structure of a partitioned map. It is
// read-only once built.
type Graphs struct {
	// Areas has an edge a-b iff some portal links a and b.
	Areas *core.Graph[int]
	// Portals has an edge between groups sharing an area, labelled with
	// Distance. Vertex labels record the ground-truth openness of the group.
	Portals *core.LabeledGraph[*Group, bool, float64]

	groups []*Group
	at     map[grid.Cell][]*Group
	byArea map[int][]*Group
}

func newGraphs() *Graphs {
	return &Graphs{
		Areas:   core.NewGraph[int](),
		Portals: core.NewLabeledGraph[*Group, bool, float64](),
		at:      make(map[grid.Cell][]*Group),
		byArea:  make(map[int][]*Group),
	}
}

// Build scans the area labels for portals and assembles the graphs.
// Cells labelled 0 are blocked.
func Build(areas *grid.Grid[int], opts ...Option) (*Graphs, error) {
	if areas == nil {
		return nil, ErrNilAreas
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	b := &builder{areas: areas, cfg: cfg, out: newGraphs()}
	// 1) Every labelled area is a vertex even without portals.
	for _, a := range areas.Values() {
		if a != 0 {
			b.out.Areas.AddVertex(a)
		}
	}

	// 2) Row pass: each cell against the cell above, runs along x.
	b.scan(rowMajor(areas), grid.Cell.Up, grid.Cell.Left)
	// 3) Column pass: each cell against the cell to its left, runs along y.
	b.scan(columnMajor(areas), grid.Cell.Left, grid.Cell.Up)

	// 4) Connect groups that share an area.
	if err := b.out.link(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("portal graphs built",
		zap.Int("areas", b.out.Areas.VertexCount()),
		zap.Int("area_edges", b.out.Areas.EdgeCount()),
		zap.Int("groups", len(b.out.groups)),
		zap.Int("group_edges", b.out.Portals.EdgeCount()),
		zap.Int("portal_squares", len(b.out.at)),
	)

	return b.out, nil
}

// Restore rebuilds Graphs from persisted groups (ids must be 0..n-1 in
// order), area vertices and edges, and group edges.
func Restore(groups []*Group, areaIDs []int, areaEdges []core.Pair[int], groupEdges []GroupEdge) (*Graphs, error) {
	out := newGraphs()
	for _, a := range areaIDs {
		out.Areas.AddVertex(a)
	}
	for _, e := range areaEdges {
		if err := out.Areas.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	for i, g := range groups {
		if g.ID() != i {
			return nil, fmt.Errorf("%w: id %d at position %d", ErrUnknownGroup, g.ID(), i)
		}
		out.register(g)
		for _, p := range g.portals {
			out.index(g, p)
		}
	}
	for _, e := range groupEdges {
		if e.A < 0 || e.A >= len(groups) || e.B < 0 || e.B >= len(groups) {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrUnknownGroup, e.A, e.B)
		}
		if err := out.Portals.AddLabeledEdge(groups[e.A], groups[e.B], e.Distance); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Groups returns every group in id order.
func (gs *Graphs) Groups() []*Group { return slices.Clone(gs.groups) }

// Group returns the group with the given id.
func (gs *Graphs) Group(id int) (*Group, bool) {
	if id < 0 || id >= len(gs.groups) {
		return nil, false
	}

	return gs.groups[id], true
}

// GroupsAt returns the groups with a portal touching c.
func (gs *Graphs) GroupsAt(c grid.Cell) []*Group { return slices.Clone(gs.at[c]) }

// GroupsByArea returns the groups touching area a, in id order.
func (gs *Graphs) GroupsByArea(a int) []*Group { return slices.Clone(gs.byArea[a]) }

// GroupsBetween returns the groups linking a and b, in id order.
func (gs *Graphs) GroupsBetween(a, b int) []*Group {
	var out []*Group
	for _, g := range gs.byArea[a] {
		if g.Connects(a, b) {
			out = append(out, g)
		}
	}

	return out
}

// IsPortalSquare reports whether c belongs to at least one portal.
func (gs *Graphs) IsPortalSquare(c grid.Cell) bool { return len(gs.at[c]) > 0 }

// Squares returns every portal square in row-major order.
func (gs *Graphs) Squares() []grid.Cell {
	out := make([]grid.Cell, 0, len(gs.at))
	for c := range gs.at {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b grid.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return out
}

// GroupEdges lists the portal-connectivity edges by id.
func (gs *Graphs) GroupEdges() []GroupEdge {
	pairs := gs.Portals.Edges()
	out := make([]GroupEdge, 0, len(pairs))
	for _, p := range pairs {
		d, _ := gs.Portals.EdgeLabel(p.From, p.To)
		out = append(out, GroupEdge{A: p.From.ID(), B: p.To.ID(), Distance: d})
	}

	return out
}

func (gs *Graphs) register(g *Group) {
	gs.groups = append(gs.groups, g)
	gs.Portals.AddVertex(g)
	_ = gs.Portals.SetVertexLabel(g, true)
	a1, a2 := g.Areas()
	gs.byArea[a1] = append(gs.byArea[a1], g)
	gs.byArea[a2] = append(gs.byArea[a2], g)
}

func (gs *Graphs) index(g *Group, p Portal) {
	for _, c := range p.Cells {
		if !slices.Contains(gs.at[c], g) {
			gs.at[c] = append(gs.at[c], g)
		}
	}
}

// link adds an edge between every pair of distinct groups sharing an area.
func (gs *Graphs) link() error {
	for _, g := range gs.groups {
		a1, a2 := g.Areas()
		for _, a := range []int{a1, a2} {
			for _, o := range gs.byArea[a] {
				if o.ID() <= g.ID() || gs.Portals.AreAdjacent(g, o) {
					continue
				}
				if err := gs.Portals.AddLabeledEdge(g, o, Distance(g, o)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// builder holds the state of one Build run.
type builder struct {
	areas *grid.Grid[int]
	cfg   Options
	out   *Graphs
}

func (b *builder) area(c grid.Cell) int { return b.areas.GetOr(c.X, c.Y, 0) }

// scan walks cells in order, pairing each with other(c). prev(c) is the
// cell visited just before c on the same line.
func (b *builder) scan(order []grid.Cell, other, prev func(grid.Cell) grid.Cell) {
	var cur *Group
	for _, c := range order {
		o := other(c)
		a, oa := b.area(c), b.area(o)
		if a == 0 || oa == 0 || a == oa {
			cur = nil
			continue
		}

		p := prev(c)
		extend := cur != nil &&
			b.area(p) == a && b.area(other(p)) == oa &&
			(b.cfg.MaxGroupSize == 0 || cur.Len() < b.cfg.MaxGroupSize)

		portal := Portal{Cells: [2]grid.Cell{c, o}, Areas: [2]int{a, oa}}
		if extend {
			cur.add(portal)
		} else {
			cur = newGroup(len(b.out.groups), portal)
			b.out.register(cur)
		}
		b.out.index(cur, portal)
		_ = b.out.Areas.AddEdge(a, oa)
	}
}

func rowMajor(g *grid.Grid[int]) []grid.Cell {
	out := make([]grid.Cell, 0, g.Len())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out = append(out, grid.C(x, y))
		}
	}

	return out
}

func columnMajor(g *grid.Grid[int]) []grid.Cell {
	out := make([]grid.Cell, 0, g.Len())
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			out = append(out, grid.C(x, y))
		}
	}

	return out
}
