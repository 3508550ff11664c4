package layout

import "sort"

// Param is a constructor parameter with its shared default value.
type Param struct {
	Default any
	Name    string
}

// Spec is a field spec entry reduced to what the layout needs.
type Spec struct {
	Name string
	ID   int16
}

type Slot struct {
	Default any
	Name    string
	ID      int16
	HasID   bool
	IsParam bool
}

type Table struct {
	byName map[string]int
	byID   map[int16]int
	Slots  []Slot
	Params int
}

// Build lays out params first, then any spec field not already named by a
// param. specs need not be sorted.
func Build(params []Param, specs []Spec) *Table {
	t := &Table{
		Slots:  make([]Slot, 0, len(params)+len(specs)),
		byName: make(map[string]int, len(params)+len(specs)),
		byID:   make(map[int16]int, len(specs)),
		Params: len(params),
	}

	for _, p := range params {
		t.byName[p.Name] = len(t.Slots)
		t.Slots = append(t.Slots, Slot{Name: p.Name, Default: p.Default, IsParam: true})
	}

	sorted := make([]Spec, len(specs))
	copy(sorted, specs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, s := range sorted {
		idx, ok := t.byName[s.Name]
		if !ok {
			idx = len(t.Slots)
			t.byName[s.Name] = idx
			t.Slots = append(t.Slots, Slot{Name: s.Name})
		}
		t.Slots[idx].ID = s.ID
		t.Slots[idx].HasID = true
		t.byID[s.ID] = idx
	}

	return t
}

func (t *Table) Len() int {
	return len(t.Slots)
}

func (t *Table) Index(name string) (int, bool) {
	idx, ok := t.byName[name]
	return idx, ok
}

func (t *Table) IndexByID(id int16) (int, bool) {
	idx, ok := t.byID[id]
	return idx, ok
}
