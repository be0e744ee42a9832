package extract

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value string
}

// Record holds the fields of one replay in schema order. Every declared
// field starts out empty. A Record is filled once by Process and read-only
// afterwards.
type Record struct {
	slots []Field
}

// NewRecord returns a record with an empty slot per field name.
func NewRecord(fields []string) *Record {
	r := &Record{slots: make([]Field, len(fields))}
	for i, name := range fields {
		r.slots[i].Name = name
	}
	return r
}

// Get returns the value of the named field, or "" if it is empty or undeclared.
func (r *Record) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Lookup returns the value of the named field and whether it is declared.
func (r *Record) Lookup(name string) (string, bool) {
	if i := r.index(name); i >= 0 {
		return r.slots[i].Value, true
	}
	return "", false
}

// Fields returns a copy of the fields in declared order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.slots))
	copy(out, r.slots)
	return out
}

// Len returns the number of declared fields.
func (r *Record) Len() int { return len(r.slots) }

func (r *Record) index(name string) int {
	for i := range r.slots {
		if r.slots[i].Name == name {
			return i
		}
	}
	return -1
}

// set overwrites a declared field. It reports false for undeclared names.
func (r *Record) set(name, value string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.slots[i].Value = value
	return true
}
