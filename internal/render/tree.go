// Package render maps normalized reports to a layout-agnostic presentation
// tree and writes that tree to a terminal or a markdown document. Rendering
// is pure: it performs no I/O and identical inputs always produce a
// structurally identical tree.
package render

// Variant selects the visual emphasis of badges and list items.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// Tree is an ordered sequence of sections describing what to display,
// independent of visual styling. It is produced once per report and not
// mutated afterwards.
type Tree struct {
	Title    string
	Icon     string
	Loading  bool
	Sections []Section
}

// Empty reports whether the tree has nothing to display.
func (t *Tree) Empty() bool {
	return !t.Loading && len(t.Sections) == 0
}

// Section is one titled block of presentation primitives.
type Section struct {
	Title string
	Icon  string
	Items []Primitive
}

// Primitive is one renderable unit inside a section.
type Primitive interface {
	primitive()
}

// ScoreIndicator displays a percentage score with a label. Values outside
// [0,100] are passed through unclamped and flagged instead.
type ScoreIndicator struct {
	Value      float64
	Label      string
	OutOfRange bool
}

// TextPanel displays a labelled block of free text.
type TextPanel struct {
	Label string
	Text  string
}

// BadgeList displays short keywords as badges.
type BadgeList struct {
	Variant Variant
	Badges  []string
}

// AnnotatedList displays items with a variant-specific marker.
type AnnotatedList struct {
	Variant Variant
	Items   []string
}

// NumberedList displays items numbered 1..N in input order.
type NumberedList struct {
	Items []string
}

// KeyValueGrid displays one labelled percentage cell per entry.
type KeyValueGrid struct {
	Entries []GridEntry
}

// GridEntry is one cell of a KeyValueGrid.
type GridEntry struct {
	Label string
	Value float64
}

// Badge is a single short annotation attached to another primitive.
type Badge struct {
	Variant Variant
	Text    string
}

// FactorRow displays a named contributing factor with an optional signed
// impact badge and description.
type FactorRow struct {
	Name        string
	Badge       *Badge
	Description string
}

// Alert displays a single failure message.
type Alert struct {
	Message string
}

// Skeleton is one placeholder block of the loading state.
type Skeleton struct{}

// RawDump displays an entire payload verbatim. Only used for analysis kinds
// the renderer does not know, so it never fails on future backends.
type RawDump struct {
	Fields map[string]any
}

func (ScoreIndicator) primitive() {}
func (TextPanel) primitive()      {}
func (BadgeList) primitive()      {}
func (AnnotatedList) primitive()  {}
func (NumberedList) primitive()   {}
func (KeyValueGrid) primitive()   {}
func (FactorRow) primitive()      {}
func (Alert) primitive()          {}
func (Skeleton) primitive()       {}
func (RawDump) primitive()        {}
