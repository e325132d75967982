package services

// CronbachAlpha estimates the internal consistency of a response matrix
// shaped [respondents][items]. Variances are population variances, so a
// perfectly correlated matrix yields 1. The result is clamped to [0, 1];
// degenerate input (no rows, fewer than two items, ragged rows, zero total
// variance) yields 0.
func CronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}
	for _, row := range matrix {
		if len(row) != k {
			return 0
		}
	}

	totals := make([]float64, n)
	itemVarSum := 0.0
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			col[i] = matrix[i][j]
			totals[i] += matrix[i][j]
		}
		itemVarSum += populationVariance(col)
	}
	totalVar := populationVariance(totals)
	if totalVar == 0 {
		return 0
	}

	kf := float64(k)
	alpha := (kf / (kf - 1)) * (1 - itemVarSum/totalVar)
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

func populationVariance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	v := 0.0
	for _, x := range xs {
		d := x - mean
		v += d * d
	}
	return v / float64(len(xs))
}
