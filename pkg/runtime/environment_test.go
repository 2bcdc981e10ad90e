package runtime

import "testing"

func TestDefineAndGetInSameFrame(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NumberValue{Val: 42})

	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := v.(NumberValue); !ok || n.Val != 42 {
		t.Fatalf("unexpected value %#v", v)
	}
}

func TestGetWalksUpParentChain(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", StringValue{Val: "outer"})
	child := NewEnvironment(parent)

	v, err := child.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := v.(StringValue); !ok || s.Val != "outer" {
		t.Fatalf("unexpected value %#v", v)
	}
}

func TestGetUndefinedVariableErrors(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Get("missing"); err == nil {
		t.Fatalf("expected error for undefined variable")
	}
}

func TestDefineShadowsOuterBindingLocallyOnly(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", StringValue{Val: "outer"})
	child := NewEnvironment(parent)
	child.Define("x", StringValue{Val: "inner"})

	v, _ := child.Get("x")
	if s := v.(StringValue).Val; s != "inner" {
		t.Fatalf("expected child's shadowed value, got %q", s)
	}
	v, _ = parent.Get("x")
	if s := v.(StringValue).Val; s != "outer" {
		t.Fatalf("outer binding must be unaffected by shadowing, got %q", s)
	}
}

func TestAssignMutatesNearestBindingFrame(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", NumberValue{Val: 1})
	child := NewEnvironment(parent)

	if err := child.Assign("x", NumberValue{Val: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := parent.Get("x")
	if n := v.(NumberValue).Val; n != 2 {
		t.Fatalf("expected parent's binding mutated to 2, got %v", n)
	}
}

func TestAssignUndefinedVariableErrors(t *testing.T) {
	env := NewEnvironment(nil)
	if err := env.Assign("missing", NilValue{}); err == nil {
		t.Fatalf("expected error assigning an undefined variable")
	}
}

func TestGetAtAndAssignAtUseExactDepth(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", StringValue{Val: "global"})
	middle := NewEnvironment(global)
	middle.Define("x", StringValue{Val: "middle"})
	inner := NewEnvironment(middle)

	v, err := inner.GetAt(1, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := v.(StringValue).Val; s != "middle" {
		t.Fatalf("GetAt(1) should hit the middle frame, got %q", s)
	}

	if err := inner.AssignAt(2, "x", StringValue{Val: "rewritten"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ = global.Get("x")
	if s := v.(StringValue).Val; s != "rewritten" {
		t.Fatalf("AssignAt(2) should have mutated the global frame, got %q", s)
	}
}
