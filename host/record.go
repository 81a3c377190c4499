package host

import "slices"

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered mapping from field names to values. Field order is
// declaration order: Set appends unknown names and updates known names in
// place. Names are unique within a record.
type Record struct {
	fields []Field
}

func NewRecord() *Record {
	return &Record{}
}

// RecordOf builds a record from fields, keeping their order. Later
// duplicates overwrite earlier ones in place.
func RecordOf(fields ...Field) *Record {
	r := &Record{}
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

func (r *Record) Len() int {
	return len(r.fields)
}

// At returns the i-th field in declaration order.
func (r *Record) At(i int) Field {
	return r.fields[i]
}

// Fields returns the backing field slice in declaration order. The slice is
// shared with the record.
func (r *Record) Fields() []Field {
	return r.fields
}

// Index returns the position of name, or -1.
func (r *Record) Index(name string) int {
	return slices.IndexFunc(r.fields, func(f Field) bool { return f.Name == name })
}

func (r *Record) Get(name string) (Value, bool) {
	i := r.Index(name)
	if i < 0 {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Set updates name in place when present, otherwise appends it.
func (r *Record) Set(name string, v Value) {
	if i := r.Index(name); i >= 0 {
		r.fields[i].Value = v
		return
	}
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Delete removes name, preserving the order of the remaining fields.
func (r *Record) Delete(name string) bool {
	i := r.Index(name)
	if i < 0 {
		return false
	}
	r.fields = slices.Delete(r.fields, i, i+1)
	return true
}

// Names returns the field names in declaration order.
func (r *Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}
