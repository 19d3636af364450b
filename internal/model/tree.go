package model

import "fmt"

const leafChild = -1

// TreeData is the flat node layout of a fitted regression tree. Node i is a
// leaf when ChildrenLeft[i] == -1; otherwise rows with
// x[Feature[i]] <= Threshold[i] descend to ChildrenLeft[i].
type TreeData struct {
	ChildrenLeft  []int     `json:"children_left" yaml:"children_left"`
	ChildrenRight []int     `json:"children_right" yaml:"children_right"`
	Feature       []int     `json:"feature" yaml:"feature"`
	Threshold     []float64 `json:"threshold" yaml:"threshold"`
	Value         []float64 `json:"value" yaml:"value"`
}

type tree struct {
	nodes []treeNode
	depth int
}

type treeNode struct {
	left, right int
	feature     int
	threshold   float64
	value       float64
}

func (t *tree) eval(x []float64) float64 {
	idx := 0
	for {
		n := &t.nodes[idx]
		if n.left == leafChild {
			return n.value
		}
		if x[n.feature] <= n.threshold {
			idx = n.left
		} else {
			idx = n.right
		}
	}
}

// buildTree validates the flat arrays and converts them into nodes. Children
// must point strictly forward and every node has at most one parent, so the
// arrays describe a tree rather than a cycle or a shared DAG.
func buildTree(d TreeData, nFeatures int) (*tree, error) {
	n := len(d.ChildrenLeft)
	if n == 0 {
		return nil, fmt.Errorf("%w: tree has no nodes", ErrCorruptModel)
	}
	if len(d.ChildrenRight) != n || len(d.Feature) != n || len(d.Threshold) != n || len(d.Value) != n {
		return nil, fmt.Errorf("%w: tree arrays differ in length", ErrCorruptModel)
	}

	nodes := make([]treeNode, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	for i := range nodes {
		left, right := d.ChildrenLeft[i], d.ChildrenRight[i]
		nodes[i] = treeNode{
			left:      left,
			right:     right,
			feature:   d.Feature[i],
			threshold: d.Threshold[i],
			value:     d.Value[i],
		}
		if left == leafChild {
			continue
		}
		if left <= i || left >= n || right <= i || right >= n {
			return nil, fmt.Errorf("%w: node %d has children %d/%d outside (%d, %d)", ErrCorruptModel, i, left, right, i, n)
		}
		if left == right {
			return nil, fmt.Errorf("%w: node %d has both children at %d", ErrCorruptModel, i, left)
		}
		for _, c := range [2]int{left, right} {
			if parent[c] != -1 {
				return nil, fmt.Errorf("%w: node %d is a child of both %d and %d", ErrCorruptModel, c, parent[c], i)
			}
			parent[c] = i
		}
		if d.Feature[i] < 0 || d.Feature[i] >= nFeatures {
			return nil, fmt.Errorf("%w: node %d splits on feature %d of %d", ErrCorruptModel, i, d.Feature[i], nFeatures)
		}
	}

	return &tree{nodes: nodes, depth: rootDepth(nodes)}, nil
}

// rootDepth walks the nodes backwards; children always follow their parent,
// so both child depths are known when a node is reached.
func rootDepth(nodes []treeNode) int {
	depth := make([]int, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		if n := nodes[i]; n.left != leafChild {
			depth[i] = 1 + max(depth[n.left], depth[n.right])
		}
	}
	return depth[0]
}

// maxFeature returns the highest split feature index, or -1 for a stump.
func (d TreeData) maxFeature() int {
	highest := -1
	for i, f := range d.Feature {
		if i < len(d.ChildrenLeft) && d.ChildrenLeft[i] == leafChild {
			continue
		}
		highest = max(highest, f)
	}
	return highest
}
