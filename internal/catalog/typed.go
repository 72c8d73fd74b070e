package catalog

import "fmt"

// GetAs retrieves the entry at name through h and asserts it to T. A missing
// key propagates the *NotFoundError from Get unchanged; a type mismatch
// yields a descriptive error naming both the stored and requested types.
func GetAs[T any](h Handle, name string) (T, error) {
	var zero T
	v, err := h.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("catalog: entry %q holds %T, not %T", joinKey(h.namespace, name), v, zero)
	}
	return t, nil
}
