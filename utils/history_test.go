package utils

import "testing"

func TestHistory(t *testing.T) {
	var h History
	h.Add("a")
	h.Add("b")
	if h.IsStagnant("a") {
		t.Fatal("stagnant with fewer than three generations recorded")
	}

	h.Add("c")
	if !h.IsStagnant("b") {
		t.Fatal("period 2 repeat not detected")
	}
	if h.IsStagnant("d") {
		t.Fatal("new hash reported stagnant")
	}

	for _, s := range []string{"d", "e", "f"} {
		h.Add(s)
	}
	if h.IsStagnant("a") {
		t.Fatal("hash older than three generations reported stagnant")
	}

	h.Reset()
	if h.IsStagnant("f") {
		t.Fatal("Reset kept history")
	}
}
