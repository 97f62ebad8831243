package galaxy

import (
	"container/heap"
	"math"
)

// Graph is an immutable snapshot of the sector network: an adjacency map,
// a dense distance matrix over a stable sector->index mapping, and (when the
// galaxy is small enough) an all-pairs shortest-distance table.
//
// Every tunnel is inserted in both directions. The trading graph deliberately
// ignores one-way travel restrictions: distances are estimates for opportunity
// scoring, not navigation plans.
//
// A Graph is never mutated after Build returns, so it is safe to share
// between concurrent queries without locking.
type Graph struct {
	sectors   map[string]*Sector
	adjacency map[string]map[string]int
	indexOf   map[string]int
	ids       []string
	distances [][]float64
	allPairs  bool
}

// Unreachable is the distance reported for disconnected sector pairs.
var Unreachable = math.Inf(1)

// Build constructs a graph snapshot from the full sector and tunnel listings.
//
// The all-pairs table is computed with Floyd-Warshall, which is O(N^3); when
// the sector count exceeds maxAllPairsSectors the table holds only single-hop
// distances and reachability queries fall back to on-demand traversal.
//
// An empty sector set yields an empty graph; downstream queries on it report
// no reachable sectors rather than erroring.
func Build(sectors []*Sector, tunnels []*WarpTunnel, maxAllPairsSectors int) *Graph {
	g := &Graph{
		sectors:   make(map[string]*Sector, len(sectors)),
		adjacency: make(map[string]map[string]int, len(sectors)),
		indexOf:   make(map[string]int, len(sectors)),
		ids:       make([]string, 0, len(sectors)),
	}

	for i, sector := range sectors {
		g.sectors[sector.ID] = sector
		g.adjacency[sector.ID] = make(map[string]int)
		g.indexOf[sector.ID] = i
		g.ids = append(g.ids, sector.ID)
	}

	n := len(g.ids)
	g.distances = make([][]float64, n)
	for i := range g.distances {
		row := make([]float64, n)
		for j := range row {
			if i != j {
				row[j] = Unreachable
			}
		}
		g.distances[i] = row
	}

	for _, tunnel := range tunnels {
		fromIdx, fromOK := g.indexOf[tunnel.FromSectorID]
		toIdx, toOK := g.indexOf[tunnel.ToSectorID]
		if !fromOK || !toOK {
			// Tunnel references a sector outside this snapshot; skip it.
			continue
		}

		distance := tunnel.Distance
		if existing, ok := g.adjacency[tunnel.FromSectorID][tunnel.ToSectorID]; ok && existing <= distance {
			continue
		}

		g.adjacency[tunnel.FromSectorID][tunnel.ToSectorID] = distance
		g.adjacency[tunnel.ToSectorID][tunnel.FromSectorID] = distance
		g.distances[fromIdx][toIdx] = float64(distance)
		g.distances[toIdx][fromIdx] = float64(distance)
	}

	if n > 0 && n <= maxAllPairsSectors {
		g.floydWarshall()
		g.allPairs = true
	}

	return g
}

// floydWarshall fills the distance matrix with all-pairs shortest distances.
func (g *Graph) floydWarshall() {
	n := len(g.ids)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := g.distances[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if candidate := ik + g.distances[k][j]; candidate < g.distances[i][j] {
					g.distances[i][j] = candidate
				}
			}
		}
	}
}

// SectorCount returns the number of sectors in the snapshot
func (g *Graph) SectorCount() int {
	return len(g.ids)
}

// IsEmpty reports whether the snapshot contains no sectors
func (g *Graph) IsEmpty() bool {
	return len(g.ids) == 0
}

// HasSector checks if a sector exists in the snapshot
func (g *Graph) HasSector(id string) bool {
	_, ok := g.sectors[id]
	return ok
}

// Sector retrieves a sector by ID
func (g *Graph) Sector(id string) (*Sector, bool) {
	sector, ok := g.sectors[id]
	return sector, ok
}

// SectorIDs returns the stable ordering of sector IDs used by the
// distance matrix
func (g *Graph) SectorIDs() []string {
	ids := make([]string, len(g.ids))
	copy(ids, g.ids)
	return ids
}

// Neighbors returns the directly linked sectors and their tunnel distances
func (g *Graph) Neighbors(id string) map[string]int {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(neighbors))
	for k, v := range neighbors {
		out[k] = v
	}
	return out
}

// Distance returns the shortest known travel distance between two sectors.
// With the all-pairs table this is the true shortest distance; otherwise it
// is computed on demand. The second return value is false when either sector
// is unknown or no path exists.
func (g *Graph) Distance(from, to string) (float64, bool) {
	fromIdx, fromOK := g.indexOf[from]
	toIdx, toOK := g.indexOf[to]
	if !fromOK || !toOK {
		return Unreachable, false
	}

	if g.allPairs {
		d := g.distances[fromIdx][toIdx]
		return d, !math.IsInf(d, 1)
	}

	reachable := g.sectorsWithinByTraversal(from, math.MaxInt)
	d, ok := reachable[to]
	if !ok {
		return Unreachable, false
	}
	return float64(d), true
}

// SectorsWithin returns every sector reachable from start within maxDistance,
// mapped to its shortest travel distance. The start sector is included at
// distance 0. An unknown start yields an empty result.
func (g *Graph) SectorsWithin(start string, maxDistance int) map[string]int {
	if _, ok := g.indexOf[start]; !ok {
		return map[string]int{}
	}

	if g.allPairs {
		startIdx := g.indexOf[start]
		result := make(map[string]int)
		for i, id := range g.ids {
			d := g.distances[startIdx][i]
			if !math.IsInf(d, 1) && d <= float64(maxDistance) {
				result[id] = int(d)
			}
		}
		return result
	}

	return g.sectorsWithinByTraversal(start, maxDistance)
}

// sectorsWithinByTraversal runs Dijkstra from start, bounded by maxDistance.
// Used when the galaxy is too large for all-pairs precomputation.
func (g *Graph) sectorsWithinByTraversal(start string, maxDistance int) map[string]int {
	dist := map[string]int{start: 0}
	pq := &sectorQueue{{sectorID: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(sectorItem)
		if d, ok := dist[item.sectorID]; ok && item.dist > d {
			continue
		}
		for neighbor, weight := range g.adjacency[item.sectorID] {
			next := item.dist + weight
			if next > maxDistance {
				continue
			}
			if d, ok := dist[neighbor]; !ok || next < d {
				dist[neighbor] = next
				heap.Push(pq, sectorItem{sectorID: neighbor, dist: next})
			}
		}
	}

	return dist
}

// sectorItem is a priority queue entry for bounded traversal
type sectorItem struct {
	sectorID string
	dist     int
}

type sectorQueue []sectorItem

func (q sectorQueue) Len() int            { return len(q) }
func (q sectorQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q sectorQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *sectorQueue) Push(x interface{}) { *q = append(*q, x.(sectorItem)) }
func (q *sectorQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
