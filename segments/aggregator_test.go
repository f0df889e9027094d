package segments

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/gtfs-segments/diag"
	"github.com/theoremus-urban-solutions/gtfs-segments/gtfs"
)

func TestKey_StructuralEquality(t *testing.T) {
	if KeyOf([]string{"A", "B", "C"}) != KeyOf([]string{"A", "B", "C"}) {
		t.Error("identical tuples must produce equal keys")
	}
	if KeyOf([]string{"A", "B"}) == KeyOf([]string{"B", "A"}) {
		t.Error("order is part of segment identity")
	}
	if got := KeyOf([]string{"A", "B", "C"}).Stops(); len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Errorf("Stops() round trip failed: %v", got)
	}
	if KeyOf(nil).Stops() != nil {
		t.Error("empty key should recover no stops")
	}
}

func TestAggregate_RouteNotPartOfIdentity(t *testing.T) {
	feed := testFeed()
	// T1 and T2 on different routes but the same ordered stops
	feed.StopTimes = []gtfs.StopTime{
		{TripID: "T1", StopID: "A", StopSequence: 1},
		{TripID: "T1", StopID: "B", StopSequence: 2},
		{TripID: "T2", StopID: "A", StopSequence: 10},
		{TripID: "T2", StopID: "B", StopSequence: 20},
	}

	counts, err := Aggregate(feed, diag.NewReporter())
	if err != nil {
		t.Fatal(err)
	}
	if counts.Distinct() != 1 {
		t.Fatalf("got %d distinct segments, want 1", counts.Distinct())
	}
	if got := counts[KeyOf([]string{"A", "B"})]; got != 2 {
		t.Errorf("shared segment counted %d times, want 2", got)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	feed := testFeed()
	shuffled := testFeed()
	// Same rows, different file order; per-trip stop_sequence order intact.
	shuffled.StopTimes = []gtfs.StopTime{
		{TripID: "T2", StopID: "A", StopSequence: 1},
		{TripID: "T1", StopID: "C", StopSequence: 2},
		{TripID: "T1", StopID: "A", StopSequence: 3},
		{TripID: "T1", StopID: "B", StopSequence: 1},
	}

	a, err := Aggregate(feed, diag.NewReporter())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Aggregate(shuffled, diag.NewReporter())
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != len(b) {
		t.Fatalf("permuted input changed segment count: %d vs %d", len(a), len(b))
	}
	for k, n := range a {
		if b[k] != n {
			t.Errorf("segment %v: %d vs %d", k.Stops(), n, b[k])
		}
	}
}

func TestAggregate_EmptyTripCounted(t *testing.T) {
	feed := testFeed()
	feed.Trips = append(feed.Trips, gtfs.Trip{TripID: "T3", RouteID: "R1"})

	counts, err := Aggregate(feed, diag.NewReporter())
	if err != nil {
		t.Fatal(err)
	}
	if got := counts[KeyOf(nil)]; got != 1 {
		t.Errorf("empty segment counted %d times, want 1", got)
	}
	if counts.Total() != 3 {
		t.Errorf("got %d trips total, want 3", counts.Total())
	}
}

func TestAggregate_MissingTable(t *testing.T) {
	feed := testFeed()
	feed.Present[gtfs.TableRoutes] = false
	rep := diag.NewReporter()

	counts, err := Aggregate(feed, rep)
	var mte *gtfs.MissingTableError
	if !errors.As(err, &mte) {
		t.Fatalf("want MissingTableError, got %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("missing table must yield empty counts, got %d", len(counts))
	}
	if rep.Count(diag.MissingTable) != 1 {
		t.Errorf("got %d missing_table conditions, want 1", rep.Count(diag.MissingTable))
	}
}

func TestCounts_Most(t *testing.T) {
	counts := Counts{
		KeyOf([]string{"A", "B"}): 3,
		KeyOf([]string{"C"}):      1,
	}
	k, n := counts.Most()
	if n != 3 || k != KeyOf([]string{"A", "B"}) {
		t.Errorf("got (%v, %d), want (A,B segment, 3)", k.Stops(), n)
	}

	empty := Counts{}
	if _, n := empty.Most(); n != 0 {
		t.Errorf("empty counts should report 0, got %d", n)
	}
}
