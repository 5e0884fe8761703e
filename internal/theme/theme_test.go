package theme

import "testing"

func TestParseAndToggle(t *testing.T) {
	if th, ok := Parse(" Dark "); !ok || th != Dark {
		t.Fatalf("Parse(Dark) = %q, %v", th, ok)
	}
	if _, ok := Parse("sepia"); ok {
		t.Fatalf("sepia should not parse")
	}
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Fatalf("toggle broken")
	}
}

func TestFromEnv(t *testing.T) {
	fallback := Fixed(Light)
	if got := FromEnv("dark", fallback)(); got != Dark {
		t.Fatalf("FromEnv(dark) = %s", got)
	}
	if got := FromEnv("", fallback)(); got != Light {
		t.Fatalf("FromEnv(\"\") = %s", got)
	}
	if got := FromEnv("neon", Fixed(Dark))(); got != Dark {
		t.Fatalf("FromEnv(neon) = %s", got)
	}
}
