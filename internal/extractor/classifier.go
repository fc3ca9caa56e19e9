package extractor

import "strings"

// Classify derives the classification label from a responseCode field.
//
// A field starting with an ASCII digit is an HTTP status and is its own label.
// Anything else is taken as "<ExceptionType>: <message>" and the label is
// whatever follows the two characters starting at the first colon, so
// "java.net.URISyntaxException: Illegal character" yields "Illegal character".
// A colon too close to the end yields the (possibly empty) remainder.
func Classify(responseCode string) (string, error) {
	if responseCode == "" {
		return "", ErrEmptyResponseCode
	}

	if isASCIIDigit(responseCode[0]) {
		return responseCode, nil
	}

	colon := strings.IndexByte(responseCode, ':')
	if colon < 0 {
		return "", ErrUnclassifiable
	}

	start := colon + 2
	if start >= len(responseCode) {
		return "", nil
	}
	return responseCode[start:], nil
}

// ClassifyRow returns the label and URL of one parsed CSV row.
func ClassifyRow(row []string, cols Columns) (label, url string, err error) {
	if len(row) < cols.minFields() {
		return "", "", ErrShortRow
	}

	label, err = Classify(row[cols.ResponseCode])
	if err != nil {
		return "", "", err
	}
	return label, row[cols.URL], nil
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
