package stockpile

// One query type per arity, 1 through 8, mirroring the bounded tuple sizes
// the registry supports. Each is a thin typed shell over queryCore; the only
// per-arity work is recovering concrete stores and fetching pointers.
//
// A query holds independent pointers into distinct stores (one per type, and
// duplicate types are rejected at construction), so the pointers returned by
// Get never alias each other.

var (
	_ iQuery = &Query1[int]{}
	_ iQuery = &Query8[int, int8, int16, int32, int64, uint, uint8, uint16]{}
)

// Query1 iterates every entity holding an A.
type Query1[A any] struct {
	queryCore
	a *ComponentStore[A]
}

// NewQuery1 creates a query over entities holding A.
func NewQuery1[A any](r *Registry) *Query1[A] {
	q := &Query1[A]{queryCore: newQueryCore(r, typeOf[A]())}
	q.bind()
	return q
}

func (q *Query1[A]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
}

// Next advances to the next matching entity.
func (q *Query1[A]) Next() bool { return q.next() }

// Reset rewinds the cursor and picks up stores created since construction.
func (q *Query1[A]) Reset() { q.reset(); q.bind() }

// Count returns the number of matching entities without moving the cursor.
func (q *Query1[A]) Count() int { return q.count() }

// Get returns the component of the entity at the cursor.
func (q *Query1[A]) Get() *A { return q.a.Get(q.cur) }

// Query2 iterates every entity holding both A and B.
type Query2[A, B any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
}

// NewQuery2 creates a query over entities holding A and B. Panics if A and B
// are the same type.
func NewQuery2[A, B any](r *Registry) *Query2[A, B] {
	q := &Query2[A, B]{queryCore: newQueryCore(r, typeOf[A](), typeOf[B]())}
	q.bind()
	return q
}

func (q *Query2[A, B]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
}

func (q *Query2[A, B]) Next() bool { return q.next() }

func (q *Query2[A, B]) Reset() { q.reset(); q.bind() }

func (q *Query2[A, B]) Count() int { return q.count() }

// Get returns the components of the entity at the cursor.
func (q *Query2[A, B]) Get() (*A, *B) {
	return q.a.Get(q.cur), q.b.Get(q.cur)
}

// Query3 iterates every entity holding A, B, and C.
type Query3[A, B, C any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
	c *ComponentStore[C]
}

func NewQuery3[A, B, C any](r *Registry) *Query3[A, B, C] {
	q := &Query3[A, B, C]{queryCore: newQueryCore(r, typeOf[A](), typeOf[B](), typeOf[C]())}
	q.bind()
	return q
}

func (q *Query3[A, B, C]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
	q.c = q.views[2].(*ComponentStore[C])
}

func (q *Query3[A, B, C]) Next() bool { return q.next() }

func (q *Query3[A, B, C]) Reset() { q.reset(); q.bind() }

func (q *Query3[A, B, C]) Count() int { return q.count() }

func (q *Query3[A, B, C]) Get() (*A, *B, *C) {
	return q.a.Get(q.cur), q.b.Get(q.cur), q.c.Get(q.cur)
}

// Query4 iterates every entity holding A, B, C, and D.
type Query4[A, B, C, D any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
	c *ComponentStore[C]
	d *ComponentStore[D]
}

func NewQuery4[A, B, C, D any](r *Registry) *Query4[A, B, C, D] {
	q := &Query4[A, B, C, D]{queryCore: newQueryCore(r, typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D]())}
	q.bind()
	return q
}

func (q *Query4[A, B, C, D]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
	q.c = q.views[2].(*ComponentStore[C])
	q.d = q.views[3].(*ComponentStore[D])
}

func (q *Query4[A, B, C, D]) Next() bool { return q.next() }

func (q *Query4[A, B, C, D]) Reset() { q.reset(); q.bind() }

func (q *Query4[A, B, C, D]) Count() int { return q.count() }

func (q *Query4[A, B, C, D]) Get() (*A, *B, *C, *D) {
	return q.a.Get(q.cur), q.b.Get(q.cur), q.c.Get(q.cur), q.d.Get(q.cur)
}

// Query5 iterates every entity holding A through E.
type Query5[A, B, C, D, E any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
	c *ComponentStore[C]
	d *ComponentStore[D]
	e *ComponentStore[E]
}

func NewQuery5[A, B, C, D, E any](r *Registry) *Query5[A, B, C, D, E] {
	q := &Query5[A, B, C, D, E]{
		queryCore: newQueryCore(r, typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](), typeOf[E]()),
	}
	q.bind()
	return q
}

func (q *Query5[A, B, C, D, E]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
	q.c = q.views[2].(*ComponentStore[C])
	q.d = q.views[3].(*ComponentStore[D])
	q.e = q.views[4].(*ComponentStore[E])
}

func (q *Query5[A, B, C, D, E]) Next() bool { return q.next() }

func (q *Query5[A, B, C, D, E]) Reset() { q.reset(); q.bind() }

func (q *Query5[A, B, C, D, E]) Count() int { return q.count() }

func (q *Query5[A, B, C, D, E]) Get() (*A, *B, *C, *D, *E) {
	return q.a.Get(q.cur), q.b.Get(q.cur), q.c.Get(q.cur), q.d.Get(q.cur), q.e.Get(q.cur)
}

// Query6 iterates every entity holding A through F.
type Query6[A, B, C, D, E, F any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
	c *ComponentStore[C]
	d *ComponentStore[D]
	e *ComponentStore[E]
	f *ComponentStore[F]
}

func NewQuery6[A, B, C, D, E, F any](r *Registry) *Query6[A, B, C, D, E, F] {
	q := &Query6[A, B, C, D, E, F]{
		queryCore: newQueryCore(r, typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](), typeOf[E](), typeOf[F]()),
	}
	q.bind()
	return q
}

func (q *Query6[A, B, C, D, E, F]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
	q.c = q.views[2].(*ComponentStore[C])
	q.d = q.views[3].(*ComponentStore[D])
	q.e = q.views[4].(*ComponentStore[E])
	q.f = q.views[5].(*ComponentStore[F])
}

func (q *Query6[A, B, C, D, E, F]) Next() bool { return q.next() }

func (q *Query6[A, B, C, D, E, F]) Reset() { q.reset(); q.bind() }

func (q *Query6[A, B, C, D, E, F]) Count() int { return q.count() }

func (q *Query6[A, B, C, D, E, F]) Get() (*A, *B, *C, *D, *E, *F) {
	return q.a.Get(q.cur), q.b.Get(q.cur), q.c.Get(q.cur), q.d.Get(q.cur),
		q.e.Get(q.cur), q.f.Get(q.cur)
}

// Query7 iterates every entity holding A through G.
type Query7[A, B, C, D, E, F, G any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
	c *ComponentStore[C]
	d *ComponentStore[D]
	e *ComponentStore[E]
	f *ComponentStore[F]
	g *ComponentStore[G]
}

func NewQuery7[A, B, C, D, E, F, G any](r *Registry) *Query7[A, B, C, D, E, F, G] {
	q := &Query7[A, B, C, D, E, F, G]{
		queryCore: newQueryCore(r,
			typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](),
			typeOf[E](), typeOf[F](), typeOf[G]()),
	}
	q.bind()
	return q
}

func (q *Query7[A, B, C, D, E, F, G]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
	q.c = q.views[2].(*ComponentStore[C])
	q.d = q.views[3].(*ComponentStore[D])
	q.e = q.views[4].(*ComponentStore[E])
	q.f = q.views[5].(*ComponentStore[F])
	q.g = q.views[6].(*ComponentStore[G])
}

func (q *Query7[A, B, C, D, E, F, G]) Next() bool { return q.next() }

func (q *Query7[A, B, C, D, E, F, G]) Reset() { q.reset(); q.bind() }

func (q *Query7[A, B, C, D, E, F, G]) Count() int { return q.count() }

func (q *Query7[A, B, C, D, E, F, G]) Get() (*A, *B, *C, *D, *E, *F, *G) {
	return q.a.Get(q.cur), q.b.Get(q.cur), q.c.Get(q.cur), q.d.Get(q.cur),
		q.e.Get(q.cur), q.f.Get(q.cur), q.g.Get(q.cur)
}

// Query8 iterates every entity holding A through H.
type Query8[A, B, C, D, E, F, G, H any] struct {
	queryCore
	a *ComponentStore[A]
	b *ComponentStore[B]
	c *ComponentStore[C]
	d *ComponentStore[D]
	e *ComponentStore[E]
	f *ComponentStore[F]
	g *ComponentStore[G]
	h *ComponentStore[H]
}

func NewQuery8[A, B, C, D, E, F, G, H any](r *Registry) *Query8[A, B, C, D, E, F, G, H] {
	q := &Query8[A, B, C, D, E, F, G, H]{
		queryCore: newQueryCore(r,
			typeOf[A](), typeOf[B](), typeOf[C](), typeOf[D](),
			typeOf[E](), typeOf[F](), typeOf[G](), typeOf[H]()),
	}
	q.bind()
	return q
}

func (q *Query8[A, B, C, D, E, F, G, H]) bind() {
	if q.empty {
		return
	}
	q.a = q.views[0].(*ComponentStore[A])
	q.b = q.views[1].(*ComponentStore[B])
	q.c = q.views[2].(*ComponentStore[C])
	q.d = q.views[3].(*ComponentStore[D])
	q.e = q.views[4].(*ComponentStore[E])
	q.f = q.views[5].(*ComponentStore[F])
	q.g = q.views[6].(*ComponentStore[G])
	q.h = q.views[7].(*ComponentStore[H])
}

func (q *Query8[A, B, C, D, E, F, G, H]) Next() bool { return q.next() }

func (q *Query8[A, B, C, D, E, F, G, H]) Reset() { q.reset(); q.bind() }

func (q *Query8[A, B, C, D, E, F, G, H]) Count() int { return q.count() }

func (q *Query8[A, B, C, D, E, F, G, H]) Get() (*A, *B, *C, *D, *E, *F, *G, *H) {
	return q.a.Get(q.cur), q.b.Get(q.cur), q.c.Get(q.cur), q.d.Get(q.cur),
		q.e.Get(q.cur), q.f.Get(q.cur), q.g.Get(q.cur), q.h.Get(q.cur)
}
