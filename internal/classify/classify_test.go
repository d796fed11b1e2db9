package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		n        int
		wantKind Kind
		wantF    []int
	}{
		{1, PowerOfTwo, nil},
		{2, PowerOfTwo, nil},
		{4, PowerOfTwo, nil},
		{128, PowerOfTwo, nil},
		{9, Mixed, []int{3, 3}},
		{25, Mixed, []int{5, 5}},
		{49, Mixed, []int{7, 7}},
		{121, Mixed, []int{11, 11}},
		// even perfect squares fall through to Coprime, not Mixed.
		{36, Coprime, []int{4, 9}},
		{100, Coprime, []int{4, 25}},
		{6, Coprime, []int{2, 3}},
		{15, Coprime, []int{3, 5}},
		{18, Coprime, []int{2, 9}},
		{35, Coprime, []int{5, 7}},
		{3, Prime, nil},
		{5, Prime, nil},
		{7, Prime, nil},
		{139, Prime, nil},
		// prime powers with no coprime split fall to Prime by exhaustion.
		{27, Prime, nil},
		{125, Prime, nil},
	}

	for _, tc := range tests {
		got := Classify(tc.n)
		if got.Kind != tc.wantKind {
			t.Errorf("Classify(%d).Kind = %s, want %s", tc.n, got.Kind, tc.wantKind)
			continue
		}
		if !equalInts(got.Factors, tc.wantF) {
			t.Errorf("Classify(%d).Factors = %v, want %v", tc.n, got.Factors, tc.wantF)
		}
	}
}

func TestClassifyFactorsAreSmaller(t *testing.T) {
	for n := 2; n <= 140; n++ {
		r := Classify(n)
		for _, f := range r.Factors {
			if f >= n {
				t.Errorf("Classify(%d) returned factor %d >= n", n, f)
			}
			if f <= 1 {
				t.Errorf("Classify(%d) returned degenerate factor %d", n, f)
			}
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
