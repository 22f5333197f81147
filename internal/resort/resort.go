package resort

import "sort"

// Resort mirrors the upstream resort record. Pool and turf are
// first-class flags in the API contract; Facilities is the open-ended
// named-boolean mapping that arrived later. They are kept distinct
// because the upstream shape is authoritative.
type Resort struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Image       string          `json:"image"`
	Gallery     []string        `json:"gallery,omitempty"`
	Pool        bool            `json:"pool"`
	Turf        bool            `json:"turf"`
	Facilities  map[string]bool `json:"facilities,omitempty"`
}

// FacilityPair is one editable row of the facilities mapping.
type FacilityPair struct {
	Key   string
	Value bool
}

// FlattenFacilities turns the mapping into ordered rows for the edit
// form. Order is stable so the form does not reshuffle between edits.
func FlattenFacilities(m map[string]bool) []FacilityPair {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]FacilityPair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, FacilityPair{Key: k, Value: m[k]})
	}
	return pairs
}

// CollapseFacilities re-flattens form rows into the submitted mapping.
// Rows with an empty key are skipped; a duplicated key keeps the last
// submitted value.
func CollapseFacilities(pairs []FacilityPair) map[string]bool {
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.Key == "" {
			continue
		}
		m[p.Key] = p.Value
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
