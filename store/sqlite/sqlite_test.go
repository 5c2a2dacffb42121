package sqlite_test

import (
	"context"
	"testing"

	"github.com/warp/comp-curve/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSavePlan_UpsertBumpsVersion(t *testing.T) {
	// GIVEN: A saved plan
	// WHEN: Saving the same id again with a new config
	// THEN: The config is replaced and the version increments

	store := newTestStore(t)
	ctx := context.Background()

	rec := sqlite.PlanRecord{ID: "p1", Name: "Plan One", ConfigJSON: `{"bands":[]}`}
	if err := store.SavePlan(ctx, rec); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	rec.ConfigJSON = `{"bands":[{"min":0,"rate":1}]}`
	if err := store.SavePlan(ctx, rec); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := store.GetPlan(ctx, "p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("plan not found after save")
	}
	if got.Version != 2 {
		t.Errorf("expected version 2 after upsert, got %d", got.Version)
	}
	if got.ConfigJSON != rec.ConfigJSON {
		t.Errorf("config not replaced: %s", got.ConfigJSON)
	}
}

func TestGetPlan_Missing(t *testing.T) {
	// GIVEN: An empty store
	// WHEN: Fetching an unknown id
	// THEN: nil record, nil error

	store := newTestStore(t)

	got, err := store.GetPlan(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing plan, got %+v", got)
	}
}

func TestListAndDeletePlans(t *testing.T) {
	// GIVEN: Two saved plans
	// WHEN: Listing, deleting one, listing again
	// THEN: List is name-ordered and shrinks after delete

	store := newTestStore(t)
	ctx := context.Background()

	store.SavePlan(ctx, sqlite.PlanRecord{ID: "b", Name: "Beta", ConfigJSON: "{}"})
	store.SavePlan(ctx, sqlite.PlanRecord{ID: "a", Name: "Alpha", ConfigJSON: "{}"})

	plans, err := store.ListPlans(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(plans) != 2 || plans[0].Name != "Alpha" {
		t.Errorf("expected [Alpha Beta], got %+v", plans)
	}

	deleted, err := store.DeletePlan(ctx, "b")
	if err != nil || !deleted {
		t.Fatalf("delete failed: deleted=%v err=%v", deleted, err)
	}

	deleted, err = store.DeletePlan(ctx, "b")
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if deleted {
		t.Error("second delete should report no row")
	}

	plans, _ = store.ListPlans(ctx)
	if len(plans) != 1 {
		t.Errorf("expected 1 plan after delete, got %d", len(plans))
	}
}
