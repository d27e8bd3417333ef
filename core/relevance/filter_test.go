package relevance

import "testing"

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		expected    bool
	}{
		{
			name:     "club name in title",
			title:    "Arsenal beat Chelsea 2-1",
			expected: true,
		},
		{
			name:        "league name in description",
			title:       "Weekend roundup",
			description: "All the Premier League action from Saturday",
			expected:    true,
		},
		{
			name:     "case insensitive match",
			title:    "GOR MAHIA claim the derby",
			expected: true,
		},
		{
			name:        "keyword only in description",
			title:       "Transfer latest",
			description: "Liverpool close in on midfielder",
			expected:    true,
		},
		{
			name:     "no keyword anywhere",
			title:    "Stock markets rally on rate cut hopes",
			expected: false,
		},
		{
			name:     "empty input",
			title:    "",
			expected: false,
		},
		{
			// Substring matching has no word boundaries; "Kenya" inside
			// "Kenyan" still matches. That is the established contract.
			name:     "partial word match",
			title:    "Kenyan shilling gains against the dollar",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRelevant(tt.title, tt.description); got != tt.expected {
				t.Errorf("IsRelevant(%q, %q) = %v, want %v", tt.title, tt.description, got, tt.expected)
			}
		})
	}
}

func TestVocabulary_StableOrder(t *testing.T) {
	first := Vocabulary()
	second := Vocabulary()

	if len(first) != len(second) {
		t.Fatalf("vocabulary length changed between calls: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("vocabulary order changed at index %d: %q vs %q", i, first[i], second[i])
		}
	}

	if first[0] != "Premier League" {
		t.Errorf("vocabulary should start with leagues, got %q", first[0])
	}
}
