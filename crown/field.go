package crown

// Loader converts a raw value read from the input tree into a field's
// typed value. Loaders must be pure; a failing loader returns an error
// that the compiled procedure wraps without reinterpreting it.
type Loader func(raw any) (any, error)

// AsIs is the identity loader. The compiler recognizes it and skips the
// call entirely, assigning the raw value to the field directly.
func AsIs(raw any) (any, error) { return raw, nil }

// Field describes one model field the extraction produces a value for.
type Field struct {
	// ID is the unique field identifier; extraction results are keyed
	// by it.
	ID string
	// Required fields must resolve or the whole extraction fails. For
	// optional fields a missing input position is swallowed and the
	// field is simply absent from the result.
	Required bool
}
