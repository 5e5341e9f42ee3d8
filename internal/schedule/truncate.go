package schedule

// TruncateName shortens a place name to at most max runes for display. A nil
// name stays nil. Rune slicing keeps multi-byte place names valid UTF-8; no
// word-boundary handling is applied. Truncation is idempotent for names
// already within the limit.
func TruncateName(name *string, max int) *string {
	if name == nil {
		return nil
	}
	runes := []rune(*name)
	if len(runes) <= max {
		return name
	}
	short := string(runes[:max])
	return &short
}
