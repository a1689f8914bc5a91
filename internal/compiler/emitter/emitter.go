package emitter

import "strings"

// Emitter accumulates the generated C in two independent append-only
// regions: the header (the include line, the entry point opening, and one
// declaration per variable) and the code (the translated statements in
// source order). It knows nothing about the grammar; the parser decides
// what goes where.
type Emitter struct {
	header strings.Builder
	code   strings.Builder
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit appends a fragment to the code region.
func (e *Emitter) Emit(fragment string) {
	e.code.WriteString(fragment)
}

// EmitLine appends a fragment plus a newline to the code region.
func (e *Emitter) EmitLine(fragment string) {
	e.code.WriteString(fragment)
	e.code.WriteString("\n")
}

// Header appends a fragment to the header region.
func (e *Emitter) Header(fragment string) {
	e.header.WriteString(fragment)
}

// HeaderLine appends a fragment plus a newline to the header region.
func (e *Emitter) HeaderLine(fragment string) {
	e.header.WriteString(fragment)
	e.header.WriteString("\n")
}

// Finalize returns the complete artifact: header first, then code.
func (e *Emitter) Finalize() string {
	return e.header.String() + e.code.String()
}
