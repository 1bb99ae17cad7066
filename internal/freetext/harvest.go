package freetext

import (
	"strings"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/prompts"
)

// Record holds the free-response answers used for theme extraction and
// report synthesis.
type Record struct {
	Passions        string   `json:"passions"`
	Feedback        string   `json:"feedback"`
	Dreams          string   `json:"dreams"`
	Threads         string   `json:"threads"`
	Anything        string   `json:"anything,omitempty"`
	ExtractedThemes []string `json:"extractedThemes"`
}

// HasContent reports whether any of the four core reflections is non-empty.
// The supplementary "anything else" answer alone does not count.
func (r Record) HasContent() bool {
	return r.Passions != "" || r.Feedback != "" || r.Dreams != "" || r.Threads != ""
}

// Reflections returns the answers in the shape the prompt composer quotes.
func (r Record) Reflections() prompts.Reflections {
	return prompts.Reflections{
		Passions: r.Passions,
		Feedback: r.Feedback,
		Dreams:   r.Dreams,
		Threads:  r.Threads,
		Anything: r.Anything,
	}
}

// Options controls harvesting.
type Options struct {
	// IncludeAnything copies the supplementary "anything else" answer into
	// the record. Off by default; report.Config sets it from
	// DISCERN_FREETEXT_INCLUDE_ANYTHING.
	IncludeAnything bool
}

// Harvest extracts the free-response fields from a freetext progress record.
// Unknown question ids are ignored.
func Harvest(progress *assessment.Progress, opts Options) Record {
	rec := Record{ExtractedThemes: []string{}}
	if progress == nil {
		return rec
	}
	for _, ans := range progress.Answers {
		text := strings.TrimSpace(ans.Value.Text())
		switch ans.QuestionID {
		case catalog.QuestionPassions:
			rec.Passions = text
		case catalog.QuestionFeedback:
			rec.Feedback = text
		case catalog.QuestionDreams:
			rec.Dreams = text
		case catalog.QuestionThreads:
			rec.Threads = text
		case catalog.QuestionAnything:
			if opts.IncludeAnything {
				rec.Anything = text
			}
		}
	}
	return rec
}
