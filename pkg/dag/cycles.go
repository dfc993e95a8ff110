package dag

// BackEdges returns the edges that close a cycle in a depth-first search
// started from the sources, then from every node left unvisited, both in
// insertion order. Removing them all leaves the graph acyclic. The graph is
// not modified; an acyclic graph yields nil.
func (d *DAG) BackEdges() []Edge {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var back [][2]string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				back = append(back, [2]string{id, child})
			}
		}
		color[id] = black
	}

	for _, n := range d.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, id := range d.order {
		if color[id] == white {
			dfs(id)
		}
	}

	if len(back) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(back))
	for _, b := range back {
		for _, e := range d.edges {
			if e.From == b[0] && e.To == b[1] {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
