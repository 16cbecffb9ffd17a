package render

import (
	"bytes"
	"testing"

	"github.com/sheikhrachel/gol-engine/model"
)

func TestDisplay(t *testing.T) {
	grid, err := model.NewGrid(3, 2, model.WithEmpty())
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := grid.Set(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := grid.Set(2, 1, true); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(grid); err != nil {
		t.Fatalf("Display: %v", err)
	}

	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosBlock + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display output:\n%q\nwant:\n%q", got, want)
	}
}
