package assessment

import (
	"strings"
	"time"

	"github.com/abhisek/discern/internal/catalog"
)

// Answer is one recorded response. QuestionID is "<prefix>-<n>", where the
// prefix resolves to a catalog entry of the answer's module.
type Answer struct {
	QuestionID string    `json:"questionId"`
	Value      Value     `json:"value"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// Prefix returns the question-id segment before the first '-'.
func (a Answer) Prefix() string {
	p, _, _ := strings.Cut(a.QuestionID, "-")
	return p
}

// Index returns the leading number of the segment after the first '-'.
// "fd-3" yields 3; "fd" or "fd-x" yield false.
func (a Answer) Index() (int, bool) {
	_, rest, ok := strings.Cut(a.QuestionID, "-")
	if !ok {
		return 0, false
	}
	n, digits := 0, 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	return n, digits > 0
}

// Progress is a user's answers for one module. There is exactly one per
// (user, module) pair.
type Progress struct {
	UserID               string         `json:"userId"`
	Module               catalog.Module `json:"module"`
	Answers              []Answer       `json:"answers"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Completed            bool           `json:"completed"`
	StartedAt            time.Time      `json:"startedAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	CompletedAt          *time.Time     `json:"completedAt,omitempty"`
}

// NewProgress starts an empty progress record.
func NewProgress(userID string, module catalog.Module, now time.Time) *Progress {
	return &Progress{
		UserID:    userID,
		Module:    module,
		Answers:   []Answer{},
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Record replaces the answer with the same question id or appends a new one.
func (p *Progress) Record(ans Answer, questionIndex int, now time.Time) {
	if ans.AnsweredAt.IsZero() {
		ans.AnsweredAt = now
	}
	replaced := false
	for i := range p.Answers {
		if p.Answers[i].QuestionID == ans.QuestionID {
			p.Answers[i] = ans
			replaced = true
			break
		}
	}
	if !replaced {
		p.Answers = append(p.Answers, ans)
	}
	p.CurrentQuestionIndex = questionIndex
	p.UpdatedAt = now
}

// MarkCompleted flags the module as finished. Completing twice keeps the
// original completion time.
func (p *Progress) MarkCompleted(now time.Time) {
	p.Completed = true
	p.UpdatedAt = now
	if p.CompletedAt == nil {
		t := now
		p.CompletedAt = &t
	}
}

// Answer returns the recorded answer for questionID.
func (p *Progress) Answer(questionID string) (Answer, bool) {
	for _, a := range p.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}
