package services

import "route-optimizer-service/internal/domain"

// BuildDistanceMatrix returns the N×N matrix of pairwise great-circle
// distances for the given stops, entry (i, j) being the distance from stop i
// to stop j in kilometers. Diagonal entries are set to exactly 0 rather than
// computed, so self-distance is never a floating-point artifact. Both (i, j)
// and (j, i) are computed independently; the matrix is not mirrored.
func BuildDistanceMatrix(stops []domain.Stop) [][]float64 {
	matrix := make([][]float64, len(stops))
	for i := range stops {
		matrix[i] = make([]float64, len(stops))
		for j := range stops {
			if i == j {
				continue
			}
			matrix[i][j] = Haversine(stops[i].Coordinates(), stops[j].Coordinates())
		}
	}
	return matrix
}
