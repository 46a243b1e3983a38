package analysis

// RootNodes returns the nodes without parent.
func (m MindMap) RootNodes() []Node {
	var out []Node
	for _, n := range m.Nodes {
		if n.NodeType == NodeTypeRoot {
			out = append(out, n)
		}
	}
	return out
}

func (m MindMap) NodesByDepth(depth int) []Node {
	var out []Node
	for _, n := range m.Nodes {
		if n.Depth == depth {
			out = append(out, n)
		}
	}
	return out
}

// Children returns the direct children of parentID in insertion order.
func (m MindMap) Children(parentID string) []Node {
	var out []Node
	for _, n := range m.Nodes {
		if n.ParentNodeID != nil && *n.ParentNodeID == parentID {
			out = append(out, n)
		}
	}
	return out
}

func (m MindMap) Statistics() Statistics {
	return ComputeStatistics(m.Nodes)
}

// ComputeStatistics works on any flat node list, including one loaded back from storage.
func ComputeStatistics(nodes []Node) Statistics {
	st := Statistics{
		TotalNodes: len(nodes),
		NodeTypes:  make(map[NodeType]int),
	}
	for _, n := range nodes {
		if n.NodeType == NodeTypeRoot {
			st.RootNodes++
		}
		if n.Depth > st.MaxDepth {
			st.MaxDepth = n.Depth
		}
		st.NodeTypes[n.NodeType]++
	}
	return st
}

func maxDepth(nodes []Node) int {
	depth := 0
	for _, n := range nodes {
		if n.Depth > depth {
			depth = n.Depth
		}
	}
	return depth
}
