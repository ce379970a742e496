package catalog

// LocalizedString maps a BCP-47 locale tag (e.g. "en", "de-DE") to text.
type LocalizedString map[string]string

// Equal reports whether two localized strings carry the same entries.
// A nil map and an empty map are considered equal.
func (l LocalizedString) Equal(other LocalizedString) bool {
	if len(l) != len(other) {
		return false
	}
	for locale, text := range l {
		got, ok := other[locale]
		if !ok || got != text {
			return false
		}
	}
	return true
}
