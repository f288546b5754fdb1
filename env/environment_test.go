package env_test

import (
	"testing"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input       string
		name, value string
		ok          bool
	}{
		{input: "FOO=bar", name: "FOO", value: "bar", ok: true},
		{input: "FOO=", name: "FOO", value: "", ok: true},
		{input: "FOO=bar=baz", name: "FOO", value: "bar=baz", ok: true},
		{input: "FOO", ok: false},
		{input: "=bar", ok: false},
		{input: "", ok: false},
	}

	for _, test := range tests {
		name, value, ok := env.Split(test.input)
		if name != test.name || value != test.value || ok != test.ok {
			t.Errorf("Split(%q) = (%q, %q, %t), want (%q, %q, %t)",
				test.input, name, value, ok, test.name, test.value, test.ok)
		}
	}
}

func TestFromSlice(t *testing.T) {
	e := env.FromSlice([]string{"THIS_IS_GREAT=totally", "ZOMG=greatness"})

	v, ok := e.Get("THIS_IS_GREAT")
	if !ok || v != "totally" {
		t.Errorf(`Get("THIS_IS_GREAT") = (%q, %t), want ("totally", true)`, v, ok)
	}
}

func TestSetGetRemove(t *testing.T) {
	e := env.New()

	e.Set("LLAMAS", "rock")
	if v, ok := e.Get("LLAMAS"); !ok || v != "rock" {
		t.Errorf(`Get("LLAMAS") = (%q, %t), want ("rock", true)`, v, ok)
	}

	if !e.Exists("LLAMAS") {
		t.Error(`Exists("LLAMAS") = false, want true`)
	}

	if got := e.Remove("LLAMAS"); got != "rock" {
		t.Errorf(`Remove("LLAMAS") = %q, want "rock"`, got)
	}

	if e.Exists("LLAMAS") {
		t.Error(`Exists("LLAMAS") after Remove = true, want false`)
	}
}

func TestDumpAndToSlice(t *testing.T) {
	e := env.FromMap(map[string]string{"A": "1", "B": "2"})

	want := map[string]string{"A": "1", "B": "2"}
	if diff := cmp.Diff(want, e.Dump()); diff != "" {
		t.Errorf("Dump() diff (-want +got):\n%s", diff)
	}

	wantSlice := []string{"A=1", "B=2"}
	if diff := cmp.Diff(wantSlice, e.ToSlice()); diff != "" {
		t.Errorf("ToSlice() diff (-want +got):\n%s", diff)
	}
}

func TestCopy(t *testing.T) {
	original := env.FromMap(map[string]string{"LLAMAS": "rock"})
	clone := original.Copy()
	clone.Set("LLAMAS", "do not rock")

	if v, _ := original.Get("LLAMAS"); v != "rock" {
		t.Errorf("original mutated by copy: LLAMAS = %q", v)
	}
}
