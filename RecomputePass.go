package main

import (
	"sheetEngine/contracts"
)

// RecomputePass evaluates cells of one sheet snapshot. Values are memoized for the pass lifetime.
//
// Traversal is an iterative Tarjan walk over references: a cell is evaluated only after
// everything it reads from, and every member of a reference cycle (or a cell reading itself)
// settles to #CIRC! whichever cell the walk starts from.
type RecomputePass struct {
	cells      map[string]string
	evaluator  *FormulaEvaluator
	cache      map[string]string
	references map[string][]string
	visitOrder map[string]int
	onPath     map[string]bool
	pending    []string
}

type evaluationFrame struct {
	cellKey    string
	references []string
	next       int
	lowLink    int
}

func NewRecomputePass(cells map[string]string, evaluator *FormulaEvaluator) *RecomputePass {
	return &RecomputePass{
		cells:      cells,
		evaluator:  evaluator,
		cache:      map[string]string{},
		references: map[string][]string{},
		visitOrder: map[string]int{},
		onPath:     map[string]bool{},
	}
}

// Seed stores already known value, the cell is neither walked nor evaluated
func (p *RecomputePass) Seed(cellKey string, value string) {
	p.cache[cellKey] = value
}

func (p *RecomputePass) Evaluate(cellKey string) string {
	if value, ok := p.cache[cellKey]; ok {
		return value
	}

	p.walk(cellKey)
	return p.cache[cellKey]
}

func (p *RecomputePass) Results() map[string]string {
	return p.cache
}

func (p *RecomputePass) walk(root string) {
	path := []*evaluationFrame{p.enter(root)}

	for len(path) > 0 {
		frame := path[len(path)-1]

		if frame.next < len(frame.references) {
			reference := frame.references[frame.next]
			frame.next++

			if _, done := p.cache[reference]; done {
				continue
			}

			if order, visited := p.visitOrder[reference]; visited {
				if p.onPath[reference] {
					frame.lowLink = min(frame.lowLink, order)
				}
				continue
			}

			path = append(path, p.enter(reference))
			continue
		}

		path = path[:len(path)-1]
		if len(path) > 0 {
			parent := path[len(path)-1]
			parent.lowLink = min(parent.lowLink, frame.lowLink)
		}

		if frame.lowLink == p.visitOrder[frame.cellKey] {
			p.settle(frame)
		}
	}
}

func (p *RecomputePass) enter(cellKey string) *evaluationFrame {
	order := len(p.visitOrder)
	p.visitOrder[cellKey] = order
	p.onPath[cellKey] = true
	p.pending = append(p.pending, cellKey)

	return &evaluationFrame{
		cellKey:    cellKey,
		references: p.referencesOf(cellKey),
		lowLink:    order,
	}
}

// settle pops the component rooted at frame and stores its values
func (p *RecomputePass) settle(frame *evaluationFrame) {
	members := make([]string, 0, 1)
	for {
		top := p.pending[len(p.pending)-1]
		p.pending = p.pending[:len(p.pending)-1]
		p.onPath[top] = false
		members = append(members, top)

		if top == frame.cellKey {
			break
		}
	}

	if len(members) > 1 || containsString(frame.references, frame.cellKey) {
		for _, member := range members {
			p.cache[member] = contracts.CircularReferenceSentinel
		}
		return
	}

	p.cache[frame.cellKey] = p.evaluator.EvaluateCell(p.cells[frame.cellKey], p.lookup)
}

func (p *RecomputePass) lookup(cellKey string) string {
	return p.cache[cellKey]
}

func (p *RecomputePass) referencesOf(cellKey string) []string {
	if references, ok := p.references[cellKey]; ok {
		return references
	}

	references := ExtractReferences(p.cells[cellKey])
	p.references[cellKey] = references
	return references
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
