package convert

// Enum maps raw against the documented strings of one server version. Anything
// outside the table is an *UnknownVariantError carrying raw; there is no fallback.
func Enum[T any](raw string, table map[string]T) (T, error) {
	v, ok := table[raw]
	if !ok {
		var zero T
		return zero, &UnknownVariantError{Raw: raw}
	}
	return v, nil
}

// OptionalEnum maps an optional enumerated string.
func OptionalEnum[T any](raw *string, table map[string]T) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := Enum(*raw, table)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ExtendEnum returns a copy of base with extra entries added, for a server version
// that documents new variants. base is left untouched so older versions keep
// rejecting the new strings.
func ExtendEnum[T any](base map[string]T, extra map[string]T) map[string]T {
	out := make(map[string]T, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
