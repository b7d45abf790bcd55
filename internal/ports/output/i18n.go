package output

// T renders user-facing bot strings. Implementations look up key for the
// given locale and fill template placeholders from data (may be nil).
type T interface {
	T(locale, key string, data map[string]any) string
}
