package emitter

import "testing"

func TestFinalizeOrdersHeaderBeforeCode(t *testing.T) {
	e := NewEmitter()

	// Interleave writes; regions must stay independent.
	e.EmitLine("x = 1;")
	e.HeaderLine("#include <stdio.h>")
	e.Emit("return ")
	e.EmitLine("0;")
	e.HeaderLine("int x;")

	expected := "#include <stdio.h>\nint x;\nx = 1;\nreturn 0;\n"
	if got := e.Finalize(); got != expected {
		t.Fatalf("Finalize() wrong.\nexpected=%q\ngot=%q", expected, got)
	}
}

func TestEmitDoesNotTerminateLine(t *testing.T) {
	e := NewEmitter()

	e.Emit("if(")
	e.Emit("1>0")
	e.EmitLine("){")

	expected := "if(1>0){\n"
	if got := e.Finalize(); got != expected {
		t.Fatalf("Finalize() wrong. expected=%q, got=%q", expected, got)
	}
}

func TestHeaderFragmentWrites(t *testing.T) {
	e := NewEmitter()

	e.Header("int ")
	e.HeaderLine("main(void){")

	expected := "int main(void){\n"
	if got := e.Finalize(); got != expected {
		t.Fatalf("Finalize() wrong. expected=%q, got=%q", expected, got)
	}
}

func TestEmptyEmitterFinalizesEmpty(t *testing.T) {
	e := NewEmitter()
	if got := e.Finalize(); got != "" {
		t.Fatalf("Finalize() on empty emitter expected=%q, got=%q", "", got)
	}
}
