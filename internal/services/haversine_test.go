package services

import (
	"math"
	"route-optimizer-service/internal/domain"
	"testing"
)

func TestHaversineSelfDistanceIsZero(t *testing.T) {
	points := []domain.Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 33.4484, Lon: -112.0740},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 89.9, Lon: 179.9},
	}

	for _, p := range points {
		// The formula can yield a minuscule non-zero value from rounding;
		// anything under 1e-9 km counts as zero.
		if d := Haversine(p, p); d > 1e-9 {
			t.Errorf("Haversine(%+v, %+v) = %v, want ~0", p, p, d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}},
		{{Lat: 33.4484, Lon: -112.0740}, {Lat: 40.7128, Lon: -74.0060}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 51.5074, Lon: -0.1278}},
	}

	for _, pair := range pairs {
		ab := Haversine(pair[0], pair[1])
		ba := Haversine(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Haversine not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestHaversineOneDegreeOfLatitude(t *testing.T) {
	// One degree along a meridian is 6371 * pi / 180 km.
	want := earthRadiusKm * math.Pi / 180

	got := Haversine(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 1, Lon: 0})
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("one degree of latitude = %v km, want %v", got, want)
	}
}

func TestHaversineColinearPointsAddUp(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0.5, Lon: 0}
	c := domain.Coordinates{Lat: 1.3, Lon: 0}

	direct := Haversine(a, c)
	viaB := Haversine(a, b) + Haversine(b, c)

	if math.Abs(direct-viaB) > 1e-6 {
		t.Errorf("colinear distances do not add up: direct=%v viaB=%v", direct, viaB)
	}
}
