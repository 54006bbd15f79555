package main

import (
	"sort"
)

// CellDependencyGraph keeps both edge directions as index based adjacency lists.
// SetDependsOn is the only mutation, so forward and reverse lists stay transposed.
type CellDependencyGraph struct {
	index   map[string]int
	keys    []string
	forward [][]int
	reverse [][]int
}

func NewCellDependencyGraph() *CellDependencyGraph {
	return &CellDependencyGraph{
		index: map[string]int{},
	}
}

func (g *CellDependencyGraph) SetDependsOn(cellKey string, references []string) {
	node := g.nodeId(cellKey)

	for _, previous := range g.forward[node] {
		g.reverse[previous] = removeNodeId(g.reverse[previous], node)
	}

	dependsOn := make([]int, 0, len(references))
	for _, reference := range references {
		referenceNode := g.nodeId(reference)
		if containsNodeId(dependsOn, referenceNode) {
			continue
		}

		dependsOn = append(dependsOn, referenceNode)
		g.reverse[referenceNode] = append(g.reverse[referenceNode], node)
	}

	g.forward[node] = dependsOn
}

func (g *CellDependencyGraph) ForwardDeps(cellKey string) []string {
	if node, ok := g.index[cellKey]; ok {
		return g.sortedKeys(g.forward[node])
	}

	return []string{}
}

func (g *CellDependencyGraph) ReverseDeps(cellKey string) []string {
	if node, ok := g.index[cellKey]; ok {
		return g.sortedKeys(g.reverse[node])
	}

	return []string{}
}

func (g *CellDependencyGraph) Dependants(cellKey string) []string {
	node, ok := g.index[cellKey]
	if !ok {
		return []string{}
	}

	reached := map[int]bool{}
	queue := append([]int{}, g.reverse[node]...)
	dependants := make([]int, 0, len(queue))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if reached[current] {
			continue
		}

		reached[current] = true
		dependants = append(dependants, current)
		queue = append(queue, g.reverse[current]...)
	}

	return g.sortedKeys(dependants)
}

func (g *CellDependencyGraph) ForwardMap() map[string][]string {
	return g.adjacencyMap(g.forward)
}

func (g *CellDependencyGraph) ReverseMap() map[string][]string {
	return g.adjacencyMap(g.reverse)
}

func (g *CellDependencyGraph) adjacencyMap(adjacency [][]int) map[string][]string {
	result := make(map[string][]string)
	for node, edges := range adjacency {
		if len(edges) > 0 {
			result[g.keys[node]] = g.sortedKeys(edges)
		}
	}

	return result
}

func (g *CellDependencyGraph) nodeId(cellKey string) int {
	if node, ok := g.index[cellKey]; ok {
		return node
	}

	node := len(g.keys)
	g.index[cellKey] = node
	g.keys = append(g.keys, cellKey)
	g.forward = append(g.forward, nil)
	g.reverse = append(g.reverse, nil)

	return node
}

func (g *CellDependencyGraph) sortedKeys(nodes []int) []string {
	keys := make([]string, 0, len(nodes))
	for _, node := range nodes {
		keys = append(keys, g.keys[node])
	}

	sort.Strings(keys)
	return keys
}

func removeNodeId(nodes []int, node int) []int {
	filtered := nodes[:0]
	for _, current := range nodes {
		if current != node {
			filtered = append(filtered, current)
		}
	}

	return filtered
}

func containsNodeId(nodes []int, node int) bool {
	for _, current := range nodes {
		if current == node {
			return true
		}
	}

	return false
}
