package series

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/tsplot/geom"
)

func TestBuilderSortsStable(t *testing.T) {
	b := NewBuilder(0)
	b.Push(geom.Pt(3, 1))
	b.Push(geom.Pt(1, 2))
	b.Push(geom.Pt(3, 3))
	b.Push(geom.Pt(2, 4))

	s := b.Complete()
	want := []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 1}, {X: 3, Y: 3}}
	for i, p := range s.Points() {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
	if s.Averages() != nil {
		t.Error("averages should be nil without a window")
	}
}

func TestBuilderRange(t *testing.T) {
	b := NewBuilder(0)
	for _, y := range []float64{4, -2, 7, 0} {
		b.Push(geom.Pt(float64(b.Len()+1), y))
	}
	s := b.Complete()

	if lo, ok := s.Lowest(); !ok || lo != -2 {
		t.Errorf("Lowest() = %v, %v; want -2, true", lo, ok)
	}
	if hi, ok := s.Highest(); !ok || hi != 7 {
		t.Errorf("Highest() = %v, %v; want 7, true", hi, ok)
	}
	if first, _ := s.First(); first != geom.Pt(1, 4) {
		t.Errorf("First() = %v", first)
	}
	if last, _ := s.Last(); last != geom.Pt(4, 0) {
		t.Errorf("Last() = %v", last)
	}
}

func TestEmptySeries(t *testing.T) {
	s := NewBuilder(3).Complete()

	if s.Len() != 0 {
		t.Errorf("Len() = %d", s.Len())
	}
	if _, ok := s.Lowest(); ok {
		t.Error("Lowest() ok on empty series")
	}
	if _, ok := s.Highest(); ok {
		t.Error("Highest() ok on empty series")
	}
	if _, ok := s.First(); ok {
		t.Error("First() ok on empty series")
	}
	if _, ok := s.Last(); ok {
		t.Error("Last() ok on empty series")
	}
	if len(s.Averages()) != 0 {
		t.Errorf("Averages() = %v", s.Averages())
	}
}

// naiveAverage recomputes the window from scratch.
func naiveAverage(points []geom.Point, i, window int) float64 {
	start := max(0, i-window)
	sum := 0.0
	for _, p := range points[start:i] {
		sum += p.Y
	}
	return sum / float64(i-start)
}

func TestRunningAverage(t *testing.T) {
	points := make([]geom.Point, 40)
	for i := range points {
		points[i] = geom.Pt(float64(i), math.Sin(float64(i)*0.7)*10+float64(i%5))
	}

	for _, window := range []int{1, 2, 3, 7, 40, 100} {
		avg := RunningAverage(points, window)
		if len(avg) != len(points) {
			t.Fatalf("window %d: len = %d", window, len(avg))
		}
		if !math.IsNaN(avg[0]) {
			t.Errorf("window %d: avg[0] = %v, want NaN", window, avg[0])
		}
		for i := 1; i < len(points); i++ {
			want := naiveAverage(points, i, window)
			if math.Abs(avg[i]-want) > 1e-9 {
				t.Errorf("window %d: avg[%d] = %v, want %v", window, i, avg[i], want)
			}
		}
	}
}

func TestRunningAverageKnownValues(t *testing.T) {
	points := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 5}, {X: 4, Y: 7}}
	avg := RunningAverage(points, 2)

	want := []float64{math.NaN(), 1, 2, 4}
	for i := 1; i < len(want); i++ {
		if math.Abs(avg[i]-want[i]) > 1e-12 {
			t.Errorf("avg[%d] = %v, want %v", i, avg[i], want[i])
		}
	}
}

func TestRunningAverageRecovers(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		window int
		want   []float64
	}{
		{"large sample leaves window", "1e20\n1\n1\n1\n", 1, []float64{1e20, 1, 1}},
		{"large sample wide window", "1e20\n1\n3\n5\n7\n", 2, []float64{1e20, 5e19, 2, 4}},
		{"inf leaves window", "inf\n1\n2\n3\n", 1, []float64{math.Inf(1), 1, 2}},
		{"nan leaves window", "nan\n4\n6\n", 1, []float64{math.NaN(), 4}},
		{"opposite infs", "inf\n-inf\n2\n4\n", 2, []float64{math.Inf(1), math.NaN(), math.Inf(-1), 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.src), tt.window)
			if err != nil {
				t.Fatal(err)
			}
			avg := s.Averages()
			if !math.IsNaN(avg[0]) {
				t.Errorf("avg[0] = %v, want NaN", avg[0])
			}
			for i, want := range tt.want {
				got := avg[i+1]
				switch {
				case math.IsNaN(want):
					if !math.IsNaN(got) {
						t.Errorf("avg[%d] = %v, want NaN", i+1, got)
					}
				case math.IsInf(want, 0):
					if got != want {
						t.Errorf("avg[%d] = %v, want %v", i+1, got, want)
					}
				case math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)):
					t.Errorf("avg[%d] = %v, want %v", i+1, got, want)
				}
			}
		})
	}
}

func TestRunningAverageDisabled(t *testing.T) {
	avg := RunningAverage([]geom.Point{{X: 1, Y: 1}}, 0)
	if len(avg) != 1 || !math.IsNaN(avg[0]) {
		t.Errorf("RunningAverage(window 0) = %v", avg)
	}
}

func TestCompleteUsesSortedOrder(t *testing.T) {
	b := NewBuilder(1)
	b.Push(geom.Pt(2, 20))
	b.Push(geom.Pt(1, 10))
	b.Push(geom.Pt(3, 30))

	avg := b.Complete().Averages()
	if avg[1] != 10 || avg[2] != 20 {
		t.Errorf("averages = %v, want [NaN 10 20]", avg)
	}
}
