package services

import "testing"

func TestCronbachAlphaPerfectCorrelation(t *testing.T) {
	data := [][]float64{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 3},
		{1, 1, 1},
	}
	got := CronbachAlpha(data)
	if got < 0.999 || got > 1.001 {
		t.Fatalf("alpha = %f, want ~1.0 for perfectly correlated items", got)
	}
}

func TestCronbachAlphaBounds(t *testing.T) {
	data := [][]float64{
		{1, 2, 3},
		{2, 1, 1},
		{3, 3, 2},
		{1, 3, 3},
	}
	got := CronbachAlpha(data)
	if got < 0 || got > 1 {
		t.Fatalf("alpha = %f, want within [0,1]", got)
	}
}

func TestCronbachAlphaDegenerateInput(t *testing.T) {
	cases := []struct {
		name string
		data [][]float64
	}{
		{"empty", nil},
		{"single item", [][]float64{{1}, {2}}},
		{"ragged rows", [][]float64{{1, 2}, {1}}},
		{"no variance", [][]float64{{2, 2}, {2, 2}}},
	}
	for _, c := range cases {
		if got := CronbachAlpha(c.data); got != 0 {
			t.Fatalf("%s: alpha = %f, want 0", c.name, got)
		}
	}
}
