package resort

import (
	"reflect"
	"testing"
)

func TestFlattenFacilitiesSortedAndStable(t *testing.T) {
	m := map[string]bool{"Spa": false, "Gym": true, "Bar": true}

	want := []FacilityPair{
		{Key: "Bar", Value: true},
		{Key: "Gym", Value: true},
		{Key: "Spa", Value: false},
	}
	for i := 0; i < 5; i++ {
		got := FlattenFacilities(m)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("flatten run %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestFlattenFacilitiesEmpty(t *testing.T) {
	if got := FlattenFacilities(nil); got != nil {
		t.Fatalf("expected nil for nil map, got %+v", got)
	}
	if got := FlattenFacilities(map[string]bool{}); got != nil {
		t.Fatalf("expected nil for empty map, got %+v", got)
	}
}

func TestCollapseFacilitiesSkipsEmptyKeys(t *testing.T) {
	pairs := []FacilityPair{
		{Key: "Gym", Value: true},
		{Key: "", Value: true},
		{Key: "Spa", Value: false},
	}
	got := CollapseFacilities(pairs)
	want := map[string]bool{"Gym": true, "Spa": false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCollapseFacilitiesDuplicateKeepsLast(t *testing.T) {
	pairs := []FacilityPair{
		{Key: "Gym", Value: true},
		{Key: "Gym", Value: false},
	}
	got := CollapseFacilities(pairs)
	if len(got) != 1 || got["Gym"] != false {
		t.Fatalf("expected last value to win, got %+v", got)
	}
}

func TestCollapseFacilitiesAllEmptyIsNil(t *testing.T) {
	if got := CollapseFacilities([]FacilityPair{{Key: ""}}); got != nil {
		t.Fatalf("expected nil when all keys empty, got %+v", got)
	}
	if got := CollapseFacilities(nil); got != nil {
		t.Fatalf("expected nil for no rows, got %+v", got)
	}
}

func TestFlattenCollapseRoundTrip(t *testing.T) {
	m := map[string]bool{"Gym": true, "Spa": false}
	got := CollapseFacilities(FlattenFacilities(m))
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("round trip changed mapping: got %+v, want %+v", got, m)
	}
}
