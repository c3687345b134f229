package professors

import (
	"cmp"
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"iter"
	"slices"
)

// noNode - Marks an absent child or an empty tree
const noNode = -1

// node - A professor in the tree. Children are indices into the node arena of the Tree.
type node struct {
	id      string
	name    string
	courses []*course.Course
	left    int
	right   int
}

// Tree - Binary search tree of professors keyed by professor id, compared lexicographically.
// Nodes live in an arena and are created the first time an id is seen, after which the node's course list is
// only appended to. The tree is never rebalanced, so its shape depends on the order ids are first seen.
type Tree struct {
	nodes []node
	root  int
}

// NewTree - Returns a pointer to a new empty Tree
func NewTree() *Tree {
	return &Tree{root: noNode}
}

// BuildTree - Returns a pointer to a new Tree holding the given courses
//   - courses are the records to add, in insertion order
//
// It returns:
//   - tree is the populated tree, nil if err is not nil
//   - err is of type crt.InvariantViolation if the tree ended up in a state it should never reach
func BuildTree(courses []*course.Course) (tree *Tree, err error) {
	t := NewTree()
	for i, record := range courses {
		err = t.AddCourse(record)
		if err != nil {
			err = fmt.Errorf("error while adding record #%d to professor tree: %w", i, err)
			return
		}
	}

	tree = t

	return
}

// AddCourse - Appends a course to its professor, creating the professor node if the id has not been seen before
func (T *Tree) AddCourse(record *course.Course) (err error) {
	n, ok := T.find(record.ProfessorID())
	if !ok {
		n, err = T.addProfessor(record)
		if err != nil {
			return
		}
	}

	T.nodes[n].courses = append(T.nodes[n].courses, record)

	return
}

// Find - Returns the profile of the professor with the given id
//   - id is the professor id
//
// It returns:
//   - professor has the display name and a copy of the ordered course list
//   - ok is false if there is no professor with the id
func (T *Tree) Find(id string) (professor course.Professor, ok bool) {
	n, ok := T.find(id)
	if !ok {
		return
	}

	professor = T.profile(n)

	return
}

// Professors - Returns a sequence over all professors in ascending id order
func (T *Tree) Professors() iter.Seq[course.Professor] {
	return func(yield func(course.Professor) bool) {
		stack := make([]int, 0, T.Depth())
		n := T.root
		for n != noNode || len(stack) > 0 {
			for n != noNode {
				stack = append(stack, n)
				n = T.nodes[n].left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(T.profile(n)) {
				return
			}
			n = T.nodes[n].right
		}
	}
}

// Len - Returns the number of professors in the tree
func (T *Tree) Len() int {
	return len(T.nodes)
}

// Depth - Returns the number of nodes on the longest path from the root, 0 for an empty tree
func (T *Tree) Depth() (depth int) {
	if T.root == noNode {
		return
	}

	type level struct {
		n     int
		depth int
	}
	stack := []level{{n: T.root, depth: 1}}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		depth = max(depth, l.depth)
		if left := T.nodes[l.n].left; left != noNode {
			stack = append(stack, level{n: left, depth: l.depth + 1})
		}
		if right := T.nodes[l.n].right; right != noNode {
			stack = append(stack, level{n: right, depth: l.depth + 1})
		}
	}

	return
}

// find - Binary search for id, returns the arena index of its node
func (T *Tree) find(id string) (n int, ok bool) {
	n = T.root
	for n != noNode {
		switch cmp.Compare(id, T.nodes[n].id) {
		case -1:
			n = T.nodes[n].left
		case 1:
			n = T.nodes[n].right
		default:
			ok = true
			return
		}
	}

	return
}

// addProfessor - Creates a node for the professor of record and links it at the empty child reached by the same
// descent find uses. It must only be called after find reported the id as absent, reaching an existing id
// during the descent is reported as crt.InvariantViolation and leaves the tree untouched.
func (T *Tree) addProfessor(record *course.Course) (n int, err error) {
	id := record.ProfessorID()
	n = len(T.nodes)

	if T.root == noNode {
		T.nodes = append(T.nodes, newNode(record))
		T.root = n
		return
	}

	cur := T.root
	for {
		switch cmp.Compare(id, T.nodes[cur].id) {
		case -1:
			if T.nodes[cur].left == noNode {
				T.nodes = append(T.nodes, newNode(record))
				T.nodes[cur].left = n
				return
			}
			cur = T.nodes[cur].left
		case 1:
			if T.nodes[cur].right == noNode {
				T.nodes = append(T.nodes, newNode(record))
				T.nodes[cur].right = n
				return
			}
			cur = T.nodes[cur].right
		default:
			n = noNode
			err = crt.NewInvariantViolation(fmt.Sprintf("professor %q is already in the tree", id))
			return
		}
	}
}

// profile - Returns the public view of a node
func (T *Tree) profile(n int) course.Professor {
	return course.Professor{
		ID:      T.nodes[n].id,
		Name:    T.nodes[n].name,
		Courses: slices.Clone(T.nodes[n].courses),
	}
}

// newNode - Returns a childless node named after the professor of record, with no courses yet
func newNode(record *course.Course) node {
	return node{
		id:    record.ProfessorID(),
		name:  record.ProfessorName(),
		left:  noNode,
		right: noNode,
	}
}
