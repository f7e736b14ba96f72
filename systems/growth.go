package systems

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mycelium/components"
)

// GrowthParams holds branching rules.
type GrowthParams struct {
	MinWater        float64 // growth requires water strictly above this
	MinNutrients    float64 // growth requires nutrients strictly above this
	Cost            float64 // water and nutrients spent per new node
	MaxBranchAge    float64 // only nodes younger than this may sprout
	MinBranchLength float64
	MaxBranchLength float64
	UpwardBias      float64 // Y direction is sampled from [0, UpwardBias]
}

// GrowthNode is a read-only view of a node.
type GrowthNode struct {
	ID        string
	Position  r3.Vec
	ParentID  string
	HasParent bool
	Age       float64
}

// Link is the rendered edge between a parent and a child.
type Link struct {
	ID     string
	Source r3.Vec
	Target r3.Vec
}

// GrowthSystem stores the node graph and applies branching.
// Nodes live in an ECS world; creation order is tracked separately so
// snapshots are stable. Nothing is ever removed.
type GrowthSystem struct {
	params GrowthParams

	world   *ecs.World
	mapper  *ecs.Map2[components.Node, components.Position]
	nodeMap *ecs.Map[components.Node]
	posMap  *ecs.Map[components.Position]
	filter  *ecs.Filter1[components.Node]

	order []ecs.Entity
	byID  map[string]ecs.Entity
	links []Link

	// scratch buffer for candidate selection
	candidates []ecs.Entity
}

// NewGrowthSystem creates an empty growth system.
func NewGrowthSystem(params GrowthParams) *GrowthSystem {
	s := &GrowthSystem{params: params}
	s.clear()
	return s
}

// clear drops all nodes and links by starting a fresh world.
func (s *GrowthSystem) clear() {
	s.world = ecs.NewWorld()
	s.mapper = ecs.NewMap2[components.Node, components.Position](s.world)
	s.nodeMap = ecs.NewMap[components.Node](s.world)
	s.posMap = ecs.NewMap[components.Position](s.world)
	s.filter = ecs.NewFilter1[components.Node](s.world)
	s.order = s.order[:0]
	s.byID = make(map[string]ecs.Entity)
	s.links = s.links[:0]
}

// Seed clears the graph, plants a root at the origin and grows the given
// number of branches from it. Returns the root id.
func (s *GrowthSystem) Seed(branches int, rng *rand.Rand) string {
	s.clear()

	rootID := newNodeID(rng)
	s.spawn(components.Node{ID: rootID}, r3.Vec{})

	for i := 0; i < branches; i++ {
		s.GrowNode(rootID, rng)
	}
	return rootID
}

// spawn adds a node entity and indexes it.
func (s *GrowthSystem) spawn(node components.Node, pos r3.Vec) ecs.Entity {
	p := components.Position{Vec: pos}
	e := s.mapper.NewEntity(&node, &p)
	s.order = append(s.order, e)
	s.byID[node.ID] = e
	return e
}

// GrowNode sprouts one child from the given parent. Unknown parents are
// ignored and reported with ok == false.
func (s *GrowthSystem) GrowNode(parentID string, rng *rand.Rand) (child GrowthNode, ok bool) {
	parentEntity, found := s.byID[parentID]
	if !found {
		return GrowthNode{}, false
	}
	parentPos := s.posMap.Get(parentEntity).Vec

	dir := s.RandomDirection(rng)
	newPos := r3.Add(parentPos, dir)
	newID := newNodeID(rng)

	node := components.Node{
		ID:        newID,
		ParentID:  parentID,
		HasParent: true,
	}
	s.spawn(node, newPos)

	s.links = append(s.links, Link{
		ID:     parentID + "-" + newID,
		Source: parentPos,
		Target: newPos,
	})

	return GrowthNode{
		ID:        newID,
		Position:  newPos,
		ParentID:  parentID,
		HasParent: true,
	}, true
}

// RandomDirection samples a growth offset: X and Z uniform in [-1, 1],
// Y uniform in [0, UpwardBias], normalized and scaled to a length in
// [MinBranchLength, MaxBranchLength].
func (s *GrowthSystem) RandomDirection(rng *rand.Rand) r3.Vec {
	v := r3.Vec{
		X: (rng.Float64() - 0.5) * 2,
		Y: rng.Float64() * s.params.UpwardBias,
		Z: (rng.Float64() - 0.5) * 2,
	}
	length := s.params.MinBranchLength + rng.Float64()*(s.params.MaxBranchLength-s.params.MinBranchLength)

	// A zero sample stays zero, so the child sits on its parent
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(length/n, v)
}

// AttemptGrowth grows one child from a random eligible node if both water
// and nutrients are above their thresholds, then charges the growth cost.
// Returns true when a node was added.
func (s *GrowthSystem) AttemptGrowth(pools *ResourcePools, rng *rand.Rand) bool {
	if pools.Water <= s.params.MinWater || pools.Nutrients <= s.params.MinNutrients {
		return false
	}

	s.candidates = s.candidates[:0]
	query := s.filter.Query()
	for query.Next() {
		node := query.Get()
		if node.Age < s.params.MaxBranchAge {
			s.candidates = append(s.candidates, query.Entity())
		}
	}
	if len(s.candidates) == 0 {
		return false
	}

	parent := s.nodeMap.Get(s.candidates[rng.Intn(len(s.candidates))])
	if _, ok := s.GrowNode(parent.ID, rng); !ok {
		return false
	}

	pools.Spend(s.params.Cost)
	return true
}

// AgeNodes advances every node's age by dt.
func (s *GrowthSystem) AgeNodes(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		node := query.Get()
		node.Age += dt
	}
}

// NodeCount returns the number of nodes.
func (s *GrowthSystem) NodeCount() int {
	return len(s.order)
}

// LinkCount returns the number of links.
func (s *GrowthSystem) LinkCount() int {
	return len(s.links)
}

// Node looks up a node by id.
func (s *GrowthSystem) Node(id string) (GrowthNode, bool) {
	e, ok := s.byID[id]
	if !ok {
		return GrowthNode{}, false
	}
	return s.view(e), true
}

// Nodes returns a copy of all nodes in creation order.
func (s *GrowthSystem) Nodes() []GrowthNode {
	out := make([]GrowthNode, len(s.order))
	for i, e := range s.order {
		out[i] = s.view(e)
	}
	return out
}

// Links returns a copy of all links in creation order.
func (s *GrowthSystem) Links() []Link {
	out := make([]Link, len(s.links))
	copy(out, s.links)
	return out
}

func (s *GrowthSystem) view(e ecs.Entity) GrowthNode {
	node := s.nodeMap.Get(e)
	pos := s.posMap.Get(e)
	return GrowthNode{
		ID:        node.ID,
		Position:  pos.Vec,
		ParentID:  node.ParentID,
		HasParent: !node.IsRoot(),
		Age:       node.Age,
	}
}

// newNodeID draws a v4 UUID from rng so seeded runs produce stable ids.
func newNodeID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
