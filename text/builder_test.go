package text

import (
	"testing"

	"github.com/gogpu/tsplot/geom"
)

func TestBuilder(t *testing.T) {
	pt := geom.Pt

	got := Begin(pt(0, 0), pt(0, 1)).
		To(pt(1, 1)).
		From(0, pt(1, 0.5)).
		ToStart(0).
		Jump(pt(0.2, 0.2), pt(0.8, 0.8)).
		Build()

	want := []Stroke{
		{pt(0, 0), pt(0, 1)},
		{pt(0, 1), pt(1, 1)},
		{pt(0, 1), pt(1, 0.5)},
		{pt(1, 0.5), pt(0, 0)},
		{pt(0.2, 0.2), pt(0.8, 0.8)},
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stroke %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuilderBuildCopies(t *testing.T) {
	b := Begin(geom.Pt(0, 0), geom.Pt(1, 1))
	first := b.Build()
	b.To(geom.Pt(1, 0))

	if len(first) != 1 {
		t.Errorf("Build result changed after further building: len = %d", len(first))
	}
	if n := len(b.Build()); n != 2 {
		t.Errorf("len = %d, want 2", n)
	}
}

func TestBuilderBadIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of range index")
		}
	}()
	Begin(geom.Pt(0, 0), geom.Pt(1, 1)).ToStart(3)
}
