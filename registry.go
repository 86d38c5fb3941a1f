package arbor

import "go.uber.org/zap"

// DataID is the type identifier of a capability record.
type DataID string

// Data is a singleton record stored in a Registry, one per logical subsystem.
// DataID must not depend on the receiver's fields; Register calls it on a
// freshly allocated zero value.
type Data interface {
	DataID() DataID
}

// dataPtr constrains PT to a pointer to T that implements Data.
type dataPtr[T any] interface {
	*T
	Data
}

// Registry is the capability registry: keyed storage of singleton data records
// for one Game session. It is not safe for concurrent use.
type Registry struct {
	records map[DataID]Data
	log     *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger disables warnings.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		records: make(map[DataID]Data),
		log:     orNop(log),
	}
}

// Logger returns the registry logger.
func (r *Registry) Logger() *zap.Logger {
	return r.log
}

// Register constructs and stores the record of kind T. Registering a kind
// that already exists logs a warning and returns the existing record.
func Register[T any, PT dataPtr[T]](r *Registry) PT {
	rec := PT(new(T))
	id := rec.DataID()
	if existing, ok := r.records[id]; ok {
		if typed, ok := existing.(PT); ok {
			r.log.Warn("register: data already exists, returning existing record", zap.String("kind", string(id)))
			return typed
		}
		r.log.Warn("register: data id held by another type, replacing", zap.String("kind", string(id)))
	}
	r.records[id] = rec
	return rec
}

// Lookup returns the record of kind T if it is registered.
func Lookup[T any, PT dataPtr[T]](r *Registry) (PT, bool) {
	if r == nil {
		return nil, false
	}
	id := PT(new(T)).DataID()
	rec, ok := r.records[id].(PT)
	return rec, ok
}

// ensure returns the record of kind T, registering it silently if absent.
func ensure[T any, PT dataPtr[T]](r *Registry) PT {
	if rec, ok := Lookup[T, PT](r); ok {
		return rec
	}
	return Register[T, PT](r)
}

// Get returns the record stored under id.
func (r *Registry) Get(id DataID) (Data, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// Has reports whether a record is stored under id.
func (r *Registry) Has(id DataID) bool {
	_, ok := r.records[id]
	return ok
}

// Unregister removes the record stored under id.
func (r *Registry) Unregister(id DataID) {
	delete(r.records, id)
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Clear drops every record.
func (r *Registry) Clear() {
	clear(r.records)
}
