package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int64 // States visited, leaves included
	Evaluations int64 // Evaluation function calls
	Cutoffs     int64 // Nodes abandoned before their last move
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes.Load(),
		Evaluations: m.evaluations.Load(),
		Cutoffs:     m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
