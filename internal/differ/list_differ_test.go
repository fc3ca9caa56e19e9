package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListDiffer_Compare(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		expected DiffStatistics
	}{
		{
			name:     "identical",
			old:      "http://a\nhttp://b",
			new:      "http://a\nhttp://b",
			expected: DiffStatistics{IsIdentical: true},
		},
		{
			name:     "trailing newline ignored",
			old:      "http://a\nhttp://b\n",
			new:      "http://a\nhttp://b",
			expected: DiffStatistics{IsIdentical: true},
		},
		{
			name:     "appended url",
			old:      "http://a\nhttp://b",
			new:      "http://a\nhttp://b\nhttp://c",
			expected: DiffStatistics{LinesAdded: 1},
		},
		{
			name:     "removed and added",
			old:      "http://a\nhttp://b\nhttp://c",
			new:      "http://a\nhttp://d",
			expected: DiffStatistics{LinesAdded: 1, LinesDeleted: 2},
		},
		{
			name:     "from empty",
			old:      "",
			new:      "http://a\nhttp://b",
			expected: DiffStatistics{LinesAdded: 2},
		},
	}

	ld := NewListDiffer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ld.Compare(tt.old, tt.new))
		})
	}
}
