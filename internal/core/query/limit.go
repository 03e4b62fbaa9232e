package query

// RenderLimit turns an optional result cap into a bound LIMIT fragment.
// Non-positive values mean unlimited. The value is bound as a parameter,
// never interpolated into the SQL text.
func RenderLimit(maxResults int) (string, []any) {
	if maxResults <= 0 {
		return "", nil
	}
	return " LIMIT ?", []any{maxResults}
}
