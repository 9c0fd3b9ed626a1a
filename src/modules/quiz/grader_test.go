package quiz

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		name      string
		correct   string
		submitted string
		want      bool
	}{
		{"exact match", "Paris", "Paris", true},
		{"case insensitive", "Paris", "paris", true},
		{"surrounding whitespace", "Paris", " Paris ", true},
		{"wrong answer", "Paris", "London", false},
		{"both need normalizing", "  TOKYO", "tokyo  ", true},
		{"empty submission", "Paris", "", false},
		{"partial answer is wrong", "Paris", "Par", false},
		{"internal whitespace matters", "New York", "NewYork", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(tt.correct, tt.submitted); got != tt.want {
				t.Errorf("Grade(%q, %q) = %v, want %v", tt.correct, tt.submitted, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Mount Everest "); got != "mount everest" {
		t.Errorf("Normalize() = %q, want %q", got, "mount everest")
	}
}
