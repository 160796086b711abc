package spec

// deepCopyValue deep copies a fill value so that clones never alias a
// previously mutated value.
func deepCopyValue(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, float64, int, int64, float32, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return t // Primitives copy by value
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyValue(item)
		}
		return cp
	default:
		// Unknown type - return as-is (shallow copy)
		return v
	}
}
