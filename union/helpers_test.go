package union

// ledger counts lifecycle events of resource values.
type ledger struct {
	constructed int
	cloned      int
	destroyed   int
}

func (l *ledger) alive() int {
	return l.constructed - l.destroyed
}

// resource is a non-trivial alternative that records its lifecycle.
type resource struct {
	Name string
	l    *ledger
}

func newResource(l *ledger, name string) resource {
	l.constructed++
	return resource{Name: name, l: l}
}

func (r resource) Clone() resource {
	r.l.constructed++
	r.l.cloned++
	return r
}

func (r *resource) Destroy() {
	if r.l != nil {
		r.l.destroyed++
	}
}

// buffer reuses its storage on same-type copy assignment.
type buffer struct {
	data    []byte
	assigns int
}

func (b *buffer) Assign(src buffer) {
	b.data = append(b.data[:0], src.data...)
	b.assigns++
}

func (b buffer) Clone() buffer {
	return buffer{data: append([]byte(nil), b.data...)}
}

// widget counts Init calls.
type widget struct {
	items []string
}

var widgetInits int

func (w *widget) Init() {
	widgetInits++
	w.items = make([]string, 0, 4)
}

type meters float64
