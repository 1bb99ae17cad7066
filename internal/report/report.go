package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/discern/internal/freetext"
	"github.com/abhisek/discern/internal/prompts"
	"github.com/abhisek/discern/internal/scoring"
	"github.com/abhisek/discern/internal/store"
)

// ModuleData is the scored snapshot a report was generated from.
type ModuleData struct {
	Strengths  *scoring.StrengthsResult  `json:"strengths"`
	Gifts      *scoring.GiftsResult      `json:"gifts"`
	Vocational *scoring.VocationalResult `json:"vocational"`
	Freetext   freetext.Record           `json:"freetext"`
}

// Report is an immutable generated report.
type Report struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName,omitempty"`
	GeneratedAt   time.Time       `json:"generatedAt"`
	ModuleData    ModuleData      `json:"moduleData"`
	Content       string          `json:"content"`
	PromptVersion prompts.Version `json:"promptVersion"`
	Model         string          `json:"model,omitempty"`
}

func (r *Report) record() (*store.ReportRecord, error) {
	data, err := json.Marshal(r.ModuleData)
	if err != nil {
		return nil, fmt.Errorf("marshal module data: %w", err)
	}
	return &store.ReportRecord{
		ID:            r.ID,
		UserID:        r.UserID,
		UserName:      r.UserName,
		Content:       r.Content,
		ModuleData:    data,
		PromptVersion: string(r.PromptVersion),
		Model:         r.Model,
		GeneratedAt:   r.GeneratedAt,
	}, nil
}

func fromRecord(rec *store.ReportRecord) (*Report, error) {
	r := &Report{
		ID:            rec.ID,
		UserID:        rec.UserID,
		UserName:      rec.UserName,
		GeneratedAt:   rec.GeneratedAt,
		Content:       rec.Content,
		PromptVersion: prompts.Version(rec.PromptVersion),
		Model:         rec.Model,
	}
	if err := json.Unmarshal(rec.ModuleData, &r.ModuleData); err != nil {
		return nil, fmt.Errorf("decode module data of report %s: %w", rec.ID, err)
	}
	return r, nil
}
