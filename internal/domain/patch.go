package domain

// Optional is a patch field that distinguishes "absent" from "set to null".
// Set=false means keep the stored value; Set=true with a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the stored value.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
