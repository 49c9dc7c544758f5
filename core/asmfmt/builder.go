// core/asmfmt/builder.go
package asmfmt

import (
	"fmt"

	"tolasm/core/assembly"
)

// builder accumulates parsed rows and enforces the layout invariants
// as each scaffold is closed.
type builder struct {
	src  string
	asm  *assembly.Assembly
	cur  *assembly.Scaffold
	line int // line of the most recent row
}

func newBuilder(name string) *builder {
	return &builder{src: name, asm: assembly.New(name)}
}

func (b *builder) fail(line int, text string, err error) error {
	return &FormatError{Source: b.src, Line: line, Text: text, Err: err}
}

// open switches to scaffold name, closing the current one if it differs.
func (b *builder) open(name string, line int, text string) error {
	if b.cur != nil && b.cur.Name == name {
		return nil
	}
	if err := b.close(); err != nil {
		return err
	}
	if _, seen := b.asm.Scaffold(name); seen {
		return b.fail(line, text, fmt.Errorf("%w: scaffold %q is not contiguous", ErrLayout, name))
	}
	b.cur = assembly.NewScaffold(name)
	if err := b.asm.AddScaffold(b.cur); err != nil {
		return b.fail(line, text, err)
	}
	return nil
}

func (b *builder) component(c assembly.Component, line int, text string) error {
	if b.cur.LastRowIsComponent() {
		return b.fail(line, text, fmt.Errorf("%w: scaffold %q has adjacent components", ErrLayout, b.cur.Name))
	}
	b.cur.AddRow(c)
	b.line = line
	return nil
}

func (b *builder) gap(g assembly.Gap, line int, text string) error {
	if b.cur == nil || len(b.cur.Rows) == 0 {
		return b.fail(line, text, fmt.Errorf("%w: gap before first component", ErrLayout))
	}
	if !b.cur.LastRowIsComponent() {
		return b.fail(line, text, fmt.Errorf("%w: scaffold %q has adjacent gaps", ErrLayout, b.cur.Name))
	}
	b.cur.AddRow(g)
	b.line = line
	return nil
}

func (b *builder) close() error {
	if b.cur == nil {
		return nil
	}
	if !b.cur.LastRowIsComponent() {
		return b.fail(b.line, "", fmt.Errorf("%w: scaffold %q ends with a gap", ErrLayout, b.cur.Name))
	}
	b.cur = nil
	return nil
}

func (b *builder) finish() (*assembly.Assembly, error) {
	if err := b.close(); err != nil {
		return nil, err
	}
	return b.asm, nil
}
