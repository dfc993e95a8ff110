package distribute

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vnalla55/farebrand/pkg/errors"
)

func sequence(t *testing.T, f Func, n, m int) []int {
	t.Helper()
	out := make([]int, m)
	for i := range m {
		v, err := f(i, n, m)
		if err != nil {
			t.Fatalf("f(%d, %d, %d) error: %v", i, n, m, err)
		}
		out[i] = v
	}
	return out
}

func TestKnownSequences(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		n, m int
		want []int
	}{
		{"proportional up 5->7", Proportional, 5, 7, []int{0, 0, 1, 2, 2, 3, 4}},
		{"proportional down 13->9", Proportional, 13, 9, []int{0, 1, 2, 4, 5, 7, 8, 10, 11}},
		{"bottom up 5->7", BottomPreferred, 5, 7, []int{0, 1, 2, 3, 3, 4, 4}},
		{"top up 5->7", TopPreferred, 5, 7, []int{0, 0, 1, 1, 2, 3, 4}},
		{"bottom up 2->5", BottomPreferred, 2, 5, []int{0, 0, 1, 1, 1}},
		{"top up 2->5", TopPreferred, 2, 5, []int{0, 0, 0, 1, 1}},
		{"bottom down 13->9", BottomPreferred, 13, 9, []int{1, 2, 4, 5, 7, 8, 10, 11, 12}},
		{"top down 13->9", TopPreferred, 13, 9, []int{0, 1, 2, 4, 5, 7, 8, 10, 11}},
		{"identity", BottomPreferred, 4, 4, []int{0, 1, 2, 3}},
		{"exact multiple", BottomPreferred, 2, 6, []int{0, 0, 0, 1, 1, 1}},
		{"single input", TopPreferred, 1, 3, []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sequence(t, tt.f, tt.n, tt.m)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		i, n, m int
	}{
		{"zero input", 0, 0, 3},
		{"zero output", 0, 3, 0},
		{"negative index", -1, 3, 3},
		{"index past end", 3, 3, 3},
	}

	for _, f := range map[string]Func{"proportional": Proportional, "bottom": BottomPreferred, "top": TopPreferred} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f(tt.i, tt.n, tt.m)
				if !errors.Is(err, errors.ErrCodeInvalidArgument) {
					t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidArgument)
				}
			})
		}
	}
}

func TestProperties(t *testing.T) {
	funcs := map[string]Func{"proportional": Proportional, "bottom": BottomPreferred, "top": TopPreferred}

	for n := 1; n <= 16; n++ {
		for m := 1; m <= 16; m++ {
			for name, f := range funcs {
				seq := sequence(t, f, n, m)
				for i, v := range seq {
					if v < 0 || v >= n {
						t.Fatalf("%s(%d,%d,%d) = %d out of range", name, i, n, m, v)
					}
					if i > 0 && v < seq[i-1] {
						t.Fatalf("%s(·,%d,%d) not monotonic: %v", name, n, m, seq)
					}
				}
				if n <= m {
					hit := make(map[int]bool)
					for _, v := range seq {
						hit[v] = true
					}
					if len(hit) != n {
						t.Fatalf("%s(·,%d,%d) does not cover all inputs: %v", name, n, m, seq)
					}
				} else {
					for i := 1; i < len(seq); i++ {
						if seq[i] == seq[i-1] {
							t.Fatalf("%s(·,%d,%d) repeats an input while down-sampling: %v", name, n, m, seq)
						}
					}
				}
			}

			for i := range m {
				b, _ := BottomPreferred(m-1-i, n, m)
				top, _ := TopPreferred(i, n, m)
				if top != n-1-b {
					t.Fatalf("mirror broken at (%d,%d,%d): top=%d bottom=%d", i, n, m, top, b)
				}
			}
		}
	}
}

func TestBiasedRepetitions(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for m := n; m <= 30; m++ {
			q, r := m/n, m%n
			bottom := counts(sequence(t, BottomPreferred, n, m), n)
			top := counts(sequence(t, TopPreferred, n, m), n)
			for j := range n {
				wantBottom, wantTop := q, q
				if j >= n-r {
					wantBottom++
				}
				if j < r {
					wantTop++
				}
				if bottom[j] != wantBottom {
					t.Fatalf("bottom(·,%d,%d) input %d repeated %d times, want %d", n, m, j, bottom[j], wantBottom)
				}
				if top[j] != wantTop {
					t.Fatalf("top(·,%d,%d) input %d repeated %d times, want %d", n, m, j, top[j], wantTop)
				}
			}
		}
	}
}

func TestDownSamplingDropsPreferredEnd(t *testing.T) {
	for n := 2; n <= 16; n++ {
		for m := 1; m < n; m++ {
			bottom := sequence(t, BottomPreferred, n, m)
			top := sequence(t, TopPreferred, n, m)
			if bottom[m-1] != n-1 {
				t.Errorf("bottom(·,%d,%d) should keep the last input: %v", n, m, bottom)
			}
			if top[0] != 0 {
				t.Errorf("top(·,%d,%d) should keep the first input: %v", n, m, top)
			}
			if m > 1 && bottom[0] == 0 && top[m-1] == n-1 {
				t.Errorf("(%d,%d): bottom keeps 0 and top keeps %d", n, m, n-1)
			}
		}
	}
}

func counts(seq []int, n int) []int {
	c := make([]int, n)
	for _, v := range seq {
		c[v]++
	}
	return c
}
