package country

import (
	"sort"
	"strconv"

	"shipping/internal/pkg/errs"
)

// Tree assembly errors.
var (
	// ErrTreeHasNoRoot is returned when no node without a parent exists.
	ErrTreeHasNoRoot = errs.NewValueIsRequiredError("country tree root")
	// ErrTreeHasManyRoots is returned when more than one parentless node exists.
	ErrTreeHasManyRoots = errs.NewValueIsInvalidError("country tree root")
)

// BuildTree assembles the country tree from a flat node list.
//
// Construction is a single grouping pass over an arena keyed by label:
// children are grouped under their parent label first and attached
// afterwards, so no recursive pointer-linking happens and a well-formed
// input (acyclic by invariant) can never produce reference cycles. Children
// are ordered by label for determinism.
func BuildTree(nodes []*Country) (*Country, error) {
	arena := make(map[string]*Country, len(nodes))
	var root *Country

	for _, node := range nodes {
		if err := node.Validate(); err != nil {
			return nil, err
		}
		arena[node.label] = node
	}

	byParent := make(map[string][]*Country, len(nodes))
	for _, node := range nodes {
		if node.parentLabel == nil {
			if root != nil {
				return nil, ErrTreeHasManyRoots
			}
			root = node
			continue
		}

		byParent[*node.parentLabel] = append(byParent[*node.parentLabel], node)
	}

	// A rootless forest is reported as such before any dangling parent
	// reference: without a root the input is malformed wholesale.
	if root == nil {
		return nil, ErrTreeHasNoRoot
	}

	for label, children := range byParent {
		parent, ok := arena[label]
		if !ok {
			return nil, errs.NewObjectNotFoundError("parentLabel", label)
		}

		sort.Slice(children, func(i, j int) bool { return children[i].label < children[j].label })
		parent.children = children
	}

	return root, nil
}

// Flatten returns the tree in pre-order: every parent strictly before its
// children. The inverse of BuildTree up to child ordering.
func Flatten(root *Country) []*Country {
	if root == nil {
		return nil
	}

	out := make([]*Country, 0, 1+len(root.children))
	out = append(out, root)
	for _, child := range root.children {
		out = append(out, Flatten(child)...)
	}
	return out
}

// Search identifies a country lookup key for the directory: exactly one of
// the fields is meaningful, discriminated by Kind.
type Search struct {
	kind    SearchKind
	label   string
	alpha2  string
	alpha3  string
	numeric int
}

// SearchKind discriminates the Search variants.
type SearchKind int

const (
	// SearchByLabel looks a country up by its stable label.
	SearchByLabel SearchKind = iota
	// SearchByAlpha2 looks a country up by its two-letter code.
	SearchByAlpha2
	// SearchByAlpha3 looks a country up by its three-letter code.
	SearchByAlpha3
	// SearchByNumeric looks a country up by its numeric code.
	SearchByNumeric
)

// NewSearchByLabel builds a label lookup.
func NewSearchByLabel(label string) Search {
	return Search{kind: SearchByLabel, label: label}
}

// NewSearchByAlpha2 builds a two-letter code lookup.
func NewSearchByAlpha2(alpha2 string) Search {
	return Search{kind: SearchByAlpha2, alpha2: alpha2}
}

// NewSearchByAlpha3 builds a three-letter code lookup.
func NewSearchByAlpha3(alpha3 string) Search {
	return Search{kind: SearchByAlpha3, alpha3: alpha3}
}

// NewSearchByNumeric builds a numeric code lookup.
func NewSearchByNumeric(numeric int) Search {
	return Search{kind: SearchByNumeric, numeric: numeric}
}

// Kind returns the lookup discriminator.
func (s Search) Kind() SearchKind { return s.kind }

// Label returns the label key for SearchByLabel lookups.
func (s Search) Label() string { return s.label }

// Alpha2 returns the key for SearchByAlpha2 lookups.
func (s Search) Alpha2() string { return s.alpha2 }

// Alpha3 returns the key for SearchByAlpha3 lookups.
func (s Search) Alpha3() string { return s.alpha3 }

// Numeric returns the key for SearchByNumeric lookups.
func (s Search) Numeric() int { return s.numeric }

// String renders the active lookup key, for error reporting.
func (s Search) String() string {
	switch s.kind {
	case SearchByAlpha2:
		return "alpha2=" + s.alpha2
	case SearchByAlpha3:
		return "alpha3=" + s.alpha3
	case SearchByNumeric:
		return "numeric=" + strconv.Itoa(s.numeric)
	default:
		return "label=" + s.label
	}
}
