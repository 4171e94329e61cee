package menu

// Field pairs a value with whether the source explicitly provided it. Output
// only repeats fields the input set, so Set is decided at load time and never
// flipped by navigation.
type Field[T any] struct {
	Value T
	Set   bool
}

// Present returns a field that was explicitly provided.
func Present[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Absent returns a field carrying a default value.
func Absent[T any](v T) Field[T] {
	return Field[T]{Value: v}
}
