package tables

import "sort"

// ClusterColumns groups word left edges into column-boundary clusters using
// one-dimensional clustering: after sorting, a gap larger than the threshold
// starts a new cluster. The returned cluster centers are in ascending order.
func ClusterColumns(edges []float64, gapThreshold float64) []float64 {
	if len(edges) == 0 {
		return nil
	}

	sorted := make([]float64, len(edges))
	copy(sorted, edges)
	sort.Float64s(sorted)

	var centers []float64
	clusterStart := 0

	flush := func(end int) {
		var sum float64
		for _, v := range sorted[clusterStart:end] {
			sum += v
		}
		centers = append(centers, sum/float64(end-clusterStart))
		clusterStart = end
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] > gapThreshold {
			flush(i)
		}
	}
	flush(len(sorted))

	return centers
}
