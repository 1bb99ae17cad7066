package catalog

import (
	"slices"
	"strconv"
	"strings"
)

// QuestionKind is the answer format a question takes.
type QuestionKind string

const (
	// QuestionScale takes a number between Min and Max.
	QuestionScale QuestionKind = "scale"
	// QuestionChoice takes exactly one of Options.
	QuestionChoice QuestionKind = "choice"
	// QuestionFreetext takes prose of at most MaxLength characters.
	QuestionFreetext QuestionKind = "freetext"
	// QuestionOpen is a question of a module whose bank is not part of the
	// catalog. Any scale, token or multi-select value is accepted.
	QuestionOpen QuestionKind = "open"
)

// FreetextMaxLength caps every free-response answer, in characters.
const FreetextMaxLength = 2000

// Question is one entry of a module's question bank.
type Question struct {
	ID        string
	Kind      QuestionKind
	Min, Max  int
	Options   []string
	MaxLength int
}

func scale(id string) Question {
	return Question{ID: id, Kind: QuestionScale, Min: 1, Max: 5}
}

func choice(id string, options ...string) Question {
	return Question{ID: id, Kind: QuestionChoice, Options: options}
}

func freetext(id string) Question {
	return Question{ID: id, Kind: QuestionFreetext, MaxLength: FreetextMaxLength}
}

// Every gift is asked as a scenario with graded evidence, then a
// frequency scale.
func giftQuestions() []Question {
	qs := make([]Question, 0, 2*len(gifts))
	for _, g := range gifts {
		qs = append(qs,
			choice(g.Prefix+"-1", "high", "med", "low", "none"),
			scale(g.Prefix+"-2"),
		)
	}
	return qs
}

// Every direction is asked as a pull scale, a scenario, a cost-tolerance
// scale at index CostQuestionIndex, and a forced choice against "other".
func vocationalQuestions() []Question {
	qs := make([]Question, 0, 4*len(directions))
	for _, d := range directions {
		p := d.Prefix
		qs = append(qs,
			scale(p+"-1"),
			choice(p+"-2", p+"-high", p+"-med", p+"-low", p+"-none"),
			scale(p+"-"+strconv.Itoa(CostQuestionIndex)),
			choice(p+"-4", p, "other"),
		)
	}
	return qs
}

var freetextQuestions = []Question{
	freetext(QuestionPassions),
	freetext(QuestionFeedback),
	freetext(QuestionDreams),
	freetext(QuestionThreads),
	freetext(QuestionAnything),
}

type bank struct {
	questions []Question
	byID      map[string]Question
}

var banks map[Module]*bank

func init() {
	banks = make(map[Module]*bank, 3)
	for m, qs := range map[Module][]Question{
		Gifts:      giftQuestions(),
		Vocational: vocationalQuestions(),
		Freetext:   freetextQuestions,
	} {
		b := &bank{questions: qs, byID: make(map[string]Question, len(qs))}
		for _, q := range qs {
			b.byID[q.ID] = q
		}
		banks[m] = b
	}
}

// Questions returns the question bank of m in the order questions are
// asked, or nil when the catalog carries no bank for m (strengths). The
// returned slice must not be modified.
func Questions(m Module) []Question {
	if b, ok := banks[m]; ok {
		return b.questions
	}
	return nil
}

// FindQuestion looks up question id in module m. For a module without a
// bank, any "<prefix>-<n>" id whose prefix names one of its catalog entries
// and whose n is a positive number is returned as a QuestionOpen.
func FindQuestion(m Module, id string) (Question, bool) {
	if b, ok := banks[m]; ok {
		q, ok := b.byID[id]
		return q, ok
	}
	prefix, num, ok := strings.Cut(id, "-")
	if !ok {
		return Question{}, false
	}
	if _, ok := Resolve(m, prefix); !ok {
		return Question{}, false
	}
	if n, err := strconv.Atoi(num); err != nil || n < 1 {
		return Question{}, false
	}
	return Question{ID: id, Kind: QuestionOpen}, true
}

// Accepts reports whether tok is one of q's options.
func (q Question) Accepts(tok string) bool {
	return slices.Contains(q.Options, tok)
}
