package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAheadBehindRecordDisplay(t *testing.T) {
	tests := []struct {
		name     string
		record   AheadBehindRecord
		expected string
	}{
		{
			name:     "ahead and behind",
			record:   AheadBehindRecord{AheadCount: "2", BehindCount: "3"},
			expected: "2↑ 3↓",
		},
		{
			name:     "ahead only",
			record:   AheadBehindRecord{AheadCount: "1", BehindCount: ""},
			expected: "1↑",
		},
		{
			name:     "behind only, ahead unknown",
			record:   AheadBehindRecord{AheadCount: "", BehindCount: "4"},
			expected: "4↓",
		},
		{
			name:     "gone",
			record:   AheadBehindRecord{AheadCount: GoneCount},
			expected: "gone",
		},
		{
			name:     "nothing known",
			record:   AheadBehindRecord{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Display())
		})
	}
}

func TestAheadBehindRecordIsGone(t *testing.T) {
	assert.True(t, AheadBehindRecord{AheadCount: GoneCount}.IsGone())
	assert.False(t, AheadBehindRecord{AheadCount: "0"}.IsGone())
}
