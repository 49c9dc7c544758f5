// core/assembly/row.go
package assembly

import (
	"fmt"
	"strings"
)

// Row is one line of a scaffold layout: either a Component or a Gap.
// The set is closed; consumers switch on the concrete type and panic on anything else.
type Row interface {
	Span() int
	isRow()
}

// Component places an interval of a source sequence into a scaffold.
type Component struct {
	Interval
	Tags Tags
}

func NewComponent(iv Interval, tags ...string) Component {
	return Component{Interval: iv, Tags: NewTags(tags...)}
}

func (c Component) Span() int { return c.Length() }

// Reverse flips the orientation and keeps the tags.
func (c Component) Reverse() Component {
	c.Interval = c.Interval.Reverse()
	return c
}

func (c Component) String() string {
	if c.Tags.Len() == 0 {
		return c.Interval.String()
	}
	return c.Interval.String() + " " + strings.Join(c.Tags.List(), " ")
}

func (Component) isRow() {}

// UnknownRow panics for a Row implementation outside this package's closed set.
func UnknownRow(r Row) {
	panic(fmt.Sprintf("assembly: unexpected row type %T", r))
}
