package services

import (
	"context"
	"errors"
	"route-optimizer-service/internal/domain"
	"testing"
	"time"
)

type fakeRouteRepo struct {
	routes map[string]*domain.Route
	saved  map[string]domain.OptimizedRoute
}

func (f *fakeRouteRepo) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	out := make([]*domain.Route, 0, len(f.routes))
	for _, r := range f.routes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRouteRepo) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	r, ok := f.routes[routeID]
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	return r, nil
}

func (f *fakeRouteRepo) SaveOptimization(ctx context.Context, routeID string, result domain.OptimizedRoute, optimizedAt time.Time) error {
	if f.saved == nil {
		f.saved = map[string]domain.OptimizedRoute{}
	}
	f.saved[routeID] = result
	return nil
}

type fakeOrderRepo struct {
	byRoute map[string][]*domain.Order
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, orders := range f.byRoute {
		out = append(out, orders...)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListOrdersByRoute(ctx context.Context, routeID string) ([]*domain.Order, error) {
	return f.byRoute[routeID], nil
}

type fakePlanCache struct {
	m    map[string]domain.OptimizedRoute
	puts int
}

func (f *fakePlanCache) Get(ctx context.Context, key string) (domain.OptimizedRoute, bool, error) {
	r, ok := f.m[key]
	return r, ok, nil
}

func (f *fakePlanCache) Put(ctx context.Context, key string, result domain.OptimizedRoute) error {
	if f.m == nil {
		f.m = map[string]domain.OptimizedRoute{}
	}
	f.m[key] = result
	f.puts++
	return nil
}

func coord(v float64) *float64 { return &v }

func TestOptimizeRouteOrdersUnknownRoute(t *testing.T) {
	routes := &fakeRouteRepo{routes: map[string]*domain.Route{}}
	orders := &fakeOrderRepo{}

	_, err := OptimizeRouteOrders(context.Background(), "missing", routes, orders, nil, nil, time.Now())
	if !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestOptimizeRouteOrdersFiltersAndPersists(t *testing.T) {
	routes := &fakeRouteRepo{
		routes: map[string]*domain.Route{
			"r1": {RouteID: "r1", Name: "Morning run", Status: "planned"},
		},
	}
	orders := &fakeOrderRepo{
		byRoute: map[string][]*domain.Order{
			"r1": {
				{OrderID: "o1", Reference: "REF-1", Lat: coord(0), Lon: coord(0)},
				{OrderID: "o2", Reference: "REF-2", Lat: coord(0), Lon: coord(1.0)},
				{OrderID: "o3", Reference: "REF-3"}, // not geocoded yet
				{OrderID: "o4", Reference: "REF-4", Lat: coord(0), Lon: coord(0.4)},
			},
		},
	}

	result, err := OptimizeRouteOrders(context.Background(), "r1", routes, orders, nil, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"o1", "o4", "o2"}
	if len(result.Sequence) != len(want) {
		t.Fatalf("sequence = %v, want %v", result.Sequence, want)
	}
	for i, id := range want {
		if result.Sequence[i] != id {
			t.Fatalf("sequence = %v, want %v", result.Sequence, want)
		}
	}

	saved, ok := routes.saved["r1"]
	if !ok {
		t.Fatal("optimization was not persisted")
	}
	if saved.TotalDistanceKm != result.TotalDistanceKm {
		t.Errorf("saved distance %v != returned %v", saved.TotalDistanceKm, result.TotalDistanceKm)
	}
}

func TestOptimizeRouteOrdersUsesCache(t *testing.T) {
	routes := &fakeRouteRepo{
		routes: map[string]*domain.Route{"r1": {RouteID: "r1"}},
	}
	orders := &fakeOrderRepo{
		byRoute: map[string][]*domain.Order{
			"r1": {
				{OrderID: "o1", Lat: coord(33.45), Lon: coord(-112.07)},
				{OrderID: "o2", Lat: coord(33.55), Lon: coord(-112.17)},
			},
		},
	}
	cache := &fakePlanCache{}

	first, err := OptimizeRouteOrders(context.Background(), "r1", routes, orders, cache, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.puts != 1 {
		t.Fatalf("expected one cache put, got %d", cache.puts)
	}

	second, err := OptimizeRouteOrders(context.Background(), "r1", routes, orders, cache, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second run is served from the cache; nothing new is stored.
	if cache.puts != 1 {
		t.Fatalf("expected cache hit on second run, got %d puts", cache.puts)
	}
	if second.TotalDistanceKm != first.TotalDistanceKm || len(second.Sequence) != len(first.Sequence) {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestPlanCacheKeyChangesWithStops(t *testing.T) {
	stops := []domain.Stop{{ID: "a", Lat: 1, Lon: 2}, {ID: "b", Lat: 3, Lon: 4}}

	base := PlanCacheKey("r1", stops)

	if PlanCacheKey("r2", stops) == base {
		t.Error("key should depend on route ID")
	}

	moved := []domain.Stop{{ID: "a", Lat: 1, Lon: 2.5}, {ID: "b", Lat: 3, Lon: 4}}
	if PlanCacheKey("r1", moved) == base {
		t.Error("key should depend on coordinates")
	}

	reordered := []domain.Stop{stops[1], stops[0]}
	if PlanCacheKey("r1", reordered) == base {
		t.Error("key should depend on stop order")
	}
}
