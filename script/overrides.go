package script

// Overrides holds replacement strings keyed by table and id. The first value
// set for an id wins.
type Overrides struct {
	tables [len(Kinds)]map[int]string
}

// NewOverrides returns an empty set.
func NewOverrides() *Overrides {
	o := &Overrides{}
	for i := range o.tables {
		o.tables[i] = make(map[int]string)
	}
	return o
}

// Set records text for id unless the id already has a value. It reports
// whether text was stored.
func (o *Overrides) Set(kind Kind, id int, text string) bool {
	m := o.tables[kind]
	if _, ok := m[id]; ok {
		return false
	}
	m[id] = text
	return true
}

// Lookup returns the replacement for id. A nil receiver has no entries.
func (o *Overrides) Lookup(kind Kind, id int) (string, bool) {
	if o == nil {
		return "", false
	}
	s, ok := o.tables[kind][id]
	return s, ok
}

// Len returns the number of ids with a replacement in the kind table.
func (o *Overrides) Len(kind Kind) int {
	if o == nil {
		return 0
	}
	return len(o.tables[kind])
}
