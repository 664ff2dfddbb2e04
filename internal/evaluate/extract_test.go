package evaluate

import "testing"

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{name: "score prefix", text: "Score: 4", want: 4, found: true},
		{name: "rating prefix", text: "Rating: 5", want: 5, found: true},
		{name: "fraction at line start", text: "3/5", want: 3, found: true},
		{name: "out of five", text: "I give it 2 out of 5", want: 2, found: true},
		{name: "case insensitive", text: "SCORE: 1", want: 1, found: true},
		{name: "score mid-text", text: "The prompt was good.\nScore: 3\nHere's why...", want: 3, found: true},
		{name: "fraction on later line", text: "Verdict below\n4/5 overall", want: 4, found: true},
		{name: "score beats fraction", text: "4/5\nScore: 2", want: 2, found: true},
		{name: "no score", text: "No score here", found: false},
		{name: "non-numeric", text: "Score: invalid", found: false},
		{name: "out of range", text: "Score: 6", found: false},
		{name: "zero out of range", text: "Rating: 0", found: false},
		{name: "fraction mid-line ignored", text: "rated it 3/5 inline", found: false},
		{name: "empty", text: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractScore(tt.text)
			if found != tt.found {
				t.Fatalf("ExtractScore(%q) found = %v, want %v", tt.text, found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("ExtractScore(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
