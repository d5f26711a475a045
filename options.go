// options.go: construction-time configuration, functional-options style.
// MINSIZE/PERTURB_SHIFT/etc. are fixed constants, not runtime-tunable;
// what IS configurable per-instance is the hasher, the value equality
// predicate, and the diagnostic logger.
package dictionary

// Option configures a Dictionary at construction time.
type Option[K comparable, V any] func(*config[K, V])

type config[K comparable, V any] struct {
	hasher  Hasher[K]
	valueEq func(a, b V) bool
	logger  Logger
}

// WithHasher installs an explicit Hasher, overriding the generic-type-driven
// default (Float64Hasher for K=float64, StringHasher for K=string,
// Int64Hasher for K=int64). Any other K requires this option; see
// defaultHasher.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(c *config[K, V]) { c.hasher = h }
}

// WithValueEqual installs the equality predicate used by Equal, and by
// Insert/Update to detect an idempotent no-op versus an overwrite. The
// default compares via reflect.DeepEqual.
func WithValueEqual[K comparable, V any](eq func(a, b V) bool) Option[K, V] {
	return func(c *config[K, V]) { c.valueEq = eq }
}

// WithLogger installs a diagnostic Logger. The default is NoOpLogger{}.
func WithLogger[K comparable, V any](l Logger) Option[K, V] {
	return func(c *config[K, V]) { c.logger = l }
}
