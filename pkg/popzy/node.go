package popzy

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// NodeKind identifies the role of a node in a dialog subtree.
type NodeKind int

const (
	KindBackdrop NodeKind = iota
	KindContainer
	KindCloseButton
	KindTitle
	KindContent
	KindText
	KindSlot
	KindFooter
	KindFooterText
	KindButton
)

var kindNames = map[NodeKind]string{
	KindBackdrop:    "backdrop",
	KindContainer:   "container",
	KindCloseButton: "close",
	KindTitle:       "title",
	KindContent:     "content",
	KindText:        "text",
	KindSlot:        "slot",
	KindFooter:      "footer",
	KindFooterText:  "footer-text",
	KindButton:      "button",
}

func (k NodeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Node is one element of a built dialog. The root is the backdrop; callers
// receive it from Modal.Open and may query into it, for example to attach a
// form to a slot declared by the template.
type Node struct {
	ID     string
	Kind   NodeKind
	Text   string
	Format Format

	classes  []string
	model    tea.Model
	inited   bool
	children []*Node
	parent   *Node
	button   int // index into the owning dialog's footer buttons for KindButton
}

func newNode(kind NodeKind, id string, classes ...string) *Node {
	return &Node{ID: id, Kind: kind, classes: slices.Clone(classes), button: -1}
}

// Append adds children to n.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Children returns n's children in render order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Parent returns n's parent, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Classes returns n's class list.
func (n *Node) Classes() []string { return slices.Clone(n.classes) }

// HasClass reports whether class is on n.
func (n *Node) HasClass(class string) bool { return slices.Contains(n.classes, class) }

// AddClass adds class if it is not already present.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass removes every occurrence of class.
func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// SetModel attaches a Bubble Tea model whose view is rendered in place of the
// node. Messages reach the model while its dialog is topmost.
func (n *Node) SetModel(m tea.Model) {
	n.model = m
	n.inited = false
}

// Model returns the attached model, if any.
func (n *Node) Model() tea.Model { return n.model }

// Walk visits n and its descendants depth first. Returning false from fn stops
// the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given ID.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if x.ID == id {
			found = x
			return false
		}
		return true
	})
	return found
}

// FindKind returns the first node of the given kind.
func (n *Node) FindKind(kind NodeKind) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if x.Kind == kind {
			found = x
			return false
		}
		return true
	})
	return found
}

// clear drops all children.
func (n *Node) clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}
