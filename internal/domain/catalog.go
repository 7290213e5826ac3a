package domain

// Catalog is the full discovered suite/case tree for one executable.
// A Catalog is replaced wholesale on every discovery, never patched in
// place, so readers always see a consistent snapshot.
type Catalog struct {
	Root *Suite
}

// NewCatalog wraps a root suite in a catalog.
func NewCatalog(root *Suite) *Catalog {
	return &Catalog{Root: root}
}

// RootID returns the root identifier (the executable path).
func (c *Catalog) RootID() string {
	return c.Root.ID
}

// Find looks up a node by identifier anywhere in the tree. Returns nil
// when no node carries the identifier.
func (c *Catalog) Find(id string) Node {
	if c == nil || c.Root == nil {
		return nil
	}
	return findIn(c.Root, id)
}

func findIn(s *Suite, id string) Node {
	if s.ID == id {
		return s
	}
	for _, child := range s.Children {
		switch n := child.(type) {
		case *Suite:
			if found := findIn(n, id); found != nil {
				return found
			}
		case *Case:
			if n.ID == id {
				return n
			}
		}
	}
	return nil
}

// CaseIDs returns the identifiers of every case in the tree, in
// discovery order.
func (c *Catalog) CaseIDs() []string {
	if c == nil || c.Root == nil {
		return nil
	}
	var ids []string
	collectCaseIDs(c.Root, &ids)
	return ids
}

func collectCaseIDs(s *Suite, ids *[]string) {
	for _, child := range s.Children {
		switch n := child.(type) {
		case *Suite:
			collectCaseIDs(n, ids)
		case *Case:
			*ids = append(*ids, n.ID)
		}
	}
}

// CountCases returns the number of cases in the tree.
func (c *Catalog) CountCases() int {
	return len(c.CaseIDs())
}
