package extractor

const (
	// ResponseCodeColumn holds the HTTP status or the non-HTTP failure text.
	ResponseCodeColumn = "responseCode"
	// URLColumn holds the requested URL.
	URLColumn = "URL"
)

// Columns are the zero-based positions of the required columns.
type Columns struct {
	ResponseCode int
	URL          int
}

// minFields is the number of fields a row needs to expose both columns.
func (c Columns) minFields() int {
	return max(c.ResponseCode, c.URL) + 1
}

// ResolveColumns locates the required columns by exact, case-sensitive name.
// responseCode is checked before URL, so a header lacking both reports responseCode.
func ResolveColumns(header []string) (Columns, error) {
	respIdx := indexOf(header, ResponseCodeColumn)
	if respIdx < 0 {
		return Columns{}, &MissingColumnError{Column: ResponseCodeColumn, Header: header}
	}

	urlIdx := indexOf(header, URLColumn)
	if urlIdx < 0 {
		return Columns{}, &MissingColumnError{Column: URLColumn, Header: header}
	}

	return Columns{ResponseCode: respIdx, URL: urlIdx}, nil
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}
