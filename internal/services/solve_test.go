package services

import (
	"context"
	"errors"
	"testing"

	"vrpsolver-service/internal/domain"
	"vrpsolver-service/internal/ports"
)

type fakeEngine struct {
	response []byte
	err      error
	calls    int
	lastReq  []byte
}

func (f *fakeEngine) Solve(ctx context.Context, request []byte) ([]byte, error) {
	f.calls++
	f.lastReq = request
	return f.response, f.err
}

type fakeCache struct {
	entries map[string][]byte
	getErr  error
	putErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Put(ctx context.Context, key string, response []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.entries[key] = response
	return nil
}

type fakeArchive struct {
	records []ports.SolveRecord
	saveErr error
}

func (f *fakeArchive) Save(ctx context.Context, rec ports.SolveRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeArchive) List(ctx context.Context) ([]ports.SolveRecord, error) {
	return f.records, nil
}

func solvableModel(t *testing.T) *domain.Model {
	t.Helper()

	m := domain.NewModel()
	if _, err := m.AddVehicleType(domain.VehicleTypeSpec{ID: 1, Capacity: 10}); err != nil {
		t.Fatalf("add vehicle type: %v", err)
	}
	if _, err := m.AddDepot(domain.DepotSpec{ID: 0}); err != nil {
		t.Fatalf("add depot: %v", err)
	}
	if _, err := m.AddCustomer(domain.CustomerSpec{ID: 1, Demand: 4}); err != nil {
		t.Fatalf("add customer: %v", err)
	}
	if _, err := m.AddLink(domain.LinkSpec{Name: "L0", StartPointID: 0, EndPointID: 1, Distance: 5}); err != nil {
		t.Fatalf("add link: %v", err)
	}
	return m
}

const engineResponse = `{"Status":{"code":3,"message":"optimal"},` +
	`"Statistics":{"solutionValue":10},` +
	`"Solution":[{"vehicleTypeId":1,"routeCost":10,"visitedPoints":[{"pointId":0},{"pointId":1},{"pointId":0}]}]}`

func TestSolveServiceSolve(t *testing.T) {
	eng := &fakeEngine{response: []byte(engineResponse)}
	cache := newFakeCache()
	archive := &fakeArchive{}
	svc := &SolveService{Engine: eng, Cache: cache, Archive: archive}

	sol, err := svc.Solve(context.Background(), solvableModel(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sol.Status.Code != 3 {
		t.Fatalf("status = %d, want 3", sol.Status.Code)
	}
	if len(sol.Routes) != 1 {
		t.Fatalf("routes = %d, want 1", len(sol.Routes))
	}
	if eng.calls != 1 {
		t.Fatalf("engine called %d times, want 1", eng.calls)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("cache holds %d entries, want 1", len(cache.entries))
	}
	if len(archive.records) != 1 {
		t.Fatalf("archive holds %d records, want 1", len(archive.records))
	}

	rec := archive.records[0]
	if rec.ID == "" {
		t.Fatal("archived record has empty id")
	}
	if rec.StatusCode != 3 || rec.Message != "optimal" {
		t.Fatalf("archived record = %+v", rec)
	}
	if string(rec.Request) != string(eng.lastReq) {
		t.Fatal("archived request differs from engine request")
	}
}

// An identical model hits the cache and skips the engine entirely.
func TestSolveServiceCacheHit(t *testing.T) {
	eng := &fakeEngine{response: []byte(engineResponse)}
	cache := newFakeCache()
	svc := &SolveService{Engine: eng, Cache: cache}

	if _, err := svc.Solve(context.Background(), solvableModel(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Solve(context.Background(), solvableModel(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if eng.calls != 1 {
		t.Fatalf("engine called %d times, want 1", eng.calls)
	}
}

// Cache and archive failures are non-fatal once the engine answered.
func TestSolveServiceStorageFailuresIgnored(t *testing.T) {
	eng := &fakeEngine{response: []byte(engineResponse)}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.putErr = errors.New("redis down")
	archive := &fakeArchive{saveErr: errors.New("disk full")}
	svc := &SolveService{Engine: eng, Cache: cache, Archive: archive}

	sol, err := svc.Solve(context.Background(), solvableModel(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Status.Code != 3 {
		t.Fatalf("status = %d, want 3", sol.Status.Code)
	}
}

func TestSolveServiceEngineError(t *testing.T) {
	eng := &fakeEngine{err: errors.New("library not found")}
	svc := &SolveService{Engine: eng}

	if _, err := svc.Solve(context.Background(), solvableModel(t)); err == nil {
		t.Fatal("expected error from engine failure")
	}
}

func TestSolveServiceEmptyModel(t *testing.T) {
	eng := &fakeEngine{response: []byte(engineResponse)}
	svc := &SolveService{Engine: eng}

	_, err := svc.Solve(context.Background(), domain.NewModel())
	if !errors.Is(err, domain.ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
	if eng.calls != 0 {
		t.Fatal("engine called for an unserializable model")
	}
}
