package getter

// DefaultMaxBatchSize is the per-call identifier limit most endpoints use.
const DefaultMaxBatchSize = 50

// PayloadMarker is the substitution site for the JSON-encoded
// identifier list inside an endpoint's payload template.
const PayloadMarker = "{ids}"

// Endpoint describes one batchable POST endpoint producing T. It is a
// pure capability description; implementations must not carry state.
type Endpoint[T any] interface {
	// URLSuffix returns the path appended to the service base URL,
	// eg "/vep/human/hgvs".
	URLSuffix() string
	// PayloadTemplate returns the request body template. It must
	// contain PayloadMarker exactly once.
	PayloadTemplate() string
	// Key returns the identifier a parsed item answers.
	Key(item *T) string
	// MaxBatchSize returns the maximum number of identifiers that can
	// be sent in a single physical call.
	MaxBatchSize() int
}

// result is what a caller ultimately receives for one identifier.
type result[T any] struct {
	item T
	err  error
}

// pending pairs an identifier with its single-use response channel.
type pending[T any] struct {
	id  string
	out chan result[T]
}

// registry holds the pending requests of one batching window in
// submission order. Duplicate identifiers share a single slot; the
// result is fanned out to every waiter.
type registry[T any] struct {
	order   []string
	waiters map[string][]chan result[T]
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{waiters: make(map[string][]chan result[T])}
}

func (r *registry[T]) add(p pending[T]) {
	if _, ok := r.waiters[p.id]; !ok {
		r.order = append(r.order, p.id)
	}
	r.waiters[p.id] = append(r.waiters[p.id], p.out)
}

// len returns the number of distinct identifiers in the window.
func (r *registry[T]) len() int { return len(r.order) }

// ids returns the distinct identifiers in submission order.
func (r *registry[T]) ids() []string { return r.order }

// deliver signals every waiter for id exactly once and removes the
// slot. It returns false if id has no pending waiters, which happens
// when the slot was already resolved or the identifier was never asked
// for.
func (r *registry[T]) deliver(id string, res result[T]) bool {
	outs, ok := r.waiters[id]
	if !ok {
		return false
	}
	delete(r.waiters, id)
	for _, out := range outs {
		out <- res // buffered, never blocks
		close(out)
	}
	return true
}
