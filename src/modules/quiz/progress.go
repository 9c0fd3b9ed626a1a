package quiz

import "fmt"

// Progress is a user's completion state over one category.
type Progress struct {
	AnsweredQuestions int `json:"answeredQuestions"`
	TotalQuestions    int `json:"totalQuestions"`
}

// Percent returns the un-rounded completion percentage. A category with
// no questions is 0%, whatever the answered count says.
func (p Progress) Percent() float64 {
	if p.TotalQuestions <= 0 {
		return 0
	}
	return float64(p.AnsweredQuestions) / float64(p.TotalQuestions) * 100
}

// String formats the percentage for display, e.g. "66.67%".
func (p Progress) String() string {
	return fmt.Sprintf("%.2f%%", p.Percent())
}
