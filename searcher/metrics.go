package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth          int // Requested depth in plies
	CompletedDepth int
	Pruning        bool
	Duration       time.Duration
	Nodes          int
	Leaves         int
	Cutoffs        int
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetCompletedDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	completed atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int, pruning bool) {
	c.startTime = time.Now()
	c.depth = depth
	c.pruning = pruning
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
	c.completed.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) SetCompletedDepth(depth int) {
	c.completed.Store(int32(depth))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:          c.depth,
		CompletedDepth: int(c.completed.Load()),
		Pruning:        c.pruning,
		Duration:       time.Since(c.startTime),
		Nodes:          int(c.nodes.Load()),
		Leaves:         int(c.leaves.Load()),
		Cutoffs:        int(c.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(depth int, pruning bool) {}
func (c *dummyCollector) AddNode()                      {}
func (c *dummyCollector) AddLeaf()                      {}
func (c *dummyCollector) AddCutoff()                    {}
func (c *dummyCollector) SetCompletedDepth(depth int)   {}
func (c *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
