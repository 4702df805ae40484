//go:build unit || e2e

package helper

// Field returns a mutator that sets key to value on a request map.
// A nil value removes the key so "missing field" cases can reuse a
// valid base payload.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
