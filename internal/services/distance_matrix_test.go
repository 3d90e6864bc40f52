package services

import (
	"math"
	"route-optimizer-service/internal/domain"
	"testing"
)

func testStops() []domain.Stop {
	return []domain.Stop{
		{ID: "a", Label: "A", Lat: 33.4484, Lon: -112.0740},
		{ID: "b", Label: "B", Lat: 33.5722, Lon: -112.0891},
		{ID: "c", Label: "C", Lat: 33.3062, Lon: -111.8413},
		{ID: "d", Label: "D", Lat: 33.4152, Lon: -111.8315},
	}
}

func TestBuildDistanceMatrixEmpty(t *testing.T) {
	matrix := BuildDistanceMatrix(nil)
	if len(matrix) != 0 {
		t.Fatalf("expected empty matrix, got %d rows", len(matrix))
	}
}

func TestBuildDistanceMatrixDiagonalIsExactlyZero(t *testing.T) {
	matrix := BuildDistanceMatrix(testStops())

	for i := range matrix {
		// Exact zero, not a near-zero floating artifact.
		if matrix[i][i] != 0 {
			t.Errorf("matrix[%d][%d] = %v, want exactly 0", i, i, matrix[i][i])
		}
	}
}

func TestBuildDistanceMatrixMatchesHaversine(t *testing.T) {
	stops := testStops()
	matrix := BuildDistanceMatrix(stops)

	if len(matrix) != len(stops) {
		t.Fatalf("expected %d rows, got %d", len(stops), len(matrix))
	}

	for i := range stops {
		if len(matrix[i]) != len(stops) {
			t.Fatalf("row %d: expected %d columns, got %d", i, len(stops), len(matrix[i]))
		}
		for j := range stops {
			if i == j {
				continue
			}
			want := Haversine(stops[i].Coordinates(), stops[j].Coordinates())
			if matrix[i][j] != want {
				t.Errorf("matrix[%d][%d] = %v, want %v", i, j, matrix[i][j], want)
			}
		}
	}
}

func TestBuildDistanceMatrixSymmetry(t *testing.T) {
	matrix := BuildDistanceMatrix(testStops())

	for i := range matrix {
		for j := range matrix {
			if math.Abs(matrix[i][j]-matrix[j][i]) > 1e-9 {
				t.Errorf("matrix[%d][%d]=%v != matrix[%d][%d]=%v", i, j, matrix[i][j], j, i, matrix[j][i])
			}
		}
	}
}
