package report

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/freetext"
	"github.com/abhisek/discern/internal/llm"
	"github.com/abhisek/discern/internal/prompts"
	"github.com/abhisek/discern/internal/scoring"
	"github.com/abhisek/discern/internal/store"
)

// Service assembles, generates and stores discernment reports.
type Service struct {
	progress  store.ProgressRepo
	reports   store.ReportRepo
	provider  llm.Provider
	extractor *freetext.Extractor
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a report Service.
func NewService(progress store.ProgressRepo, reports store.ReportRepo, provider llm.Provider, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		progress:  progress,
		reports:   reports,
		provider:  provider,
		extractor: freetext.NewExtractor(provider, cfg.ThemeMaxTokens, logger),
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// LoadProgress fetches the user's progress for every module concurrently.
// Absent modules are missing from the map.
func LoadProgress(ctx context.Context, repo store.ProgressRepo, userID string) (map[catalog.Module]*assessment.Progress, error) {
	loaded := make([]*assessment.Progress, len(catalog.Modules))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range catalog.Modules {
		g.Go(func() error {
			p, err := repo.FindOne(gctx, userID, m)
			if err != nil {
				return err
			}
			loaded[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, storeError("load progress", err)
	}

	out := make(map[catalog.Module]*assessment.Progress, len(loaded))
	for i, p := range loaded {
		if p != nil {
			out[catalog.Modules[i]] = p
		}
	}
	return out, nil
}

// missing lists the modules that are absent or unfinished, in catalog order.
func missing(progress map[catalog.Module]*assessment.Progress) []catalog.Module {
	var out []catalog.Module
	for _, m := range catalog.Modules {
		if p, ok := progress[m]; !ok || !p.Completed {
			out = append(out, m)
		}
	}
	return out
}

// GenerateReport scores the user's current answers and synthesizes a new
// report. The report is stored only once the full text is in hand.
func (s *Service) GenerateReport(ctx context.Context, user auth.User) (*Report, error) {
	start := time.Now()
	log := s.logger.With("user_id", user.ID)

	progress, err := LoadProgress(ctx, s.progress, user.ID)
	if err != nil {
		return nil, err
	}
	if m := missing(progress); len(m) > 0 {
		return nil, &MissingModulesError{Modules: m}
	}

	data, err := s.score(progress)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithUser(ctx, user.ID)
	themes := s.extractor.Extract(ctx, data.Freetext)
	data.Freetext.ExtractedThemes = themes.List()

	name := strings.TrimSpace(user.Name)
	if name == "" {
		name = s.cfg.DefaultName
	}
	prompt := prompts.Synthesis(prompts.SynthesisInput{
		Name:        name,
		Strengths:   data.Strengths,
		Gifts:       data.Gifts,
		Vocational:  data.Vocational,
		Reflections: data.Freetext.Reflections(),
		Themes:      data.Freetext.ExtractedThemes,
	})
	system, err := prompts.SystemInstruction(s.cfg.PromptVersion)
	if err != nil {
		return nil, err
	}

	text, err := llm.Complete(llm.WithPurpose(ctx, llm.PurposeSynthesis), s.provider, system, prompt, s.cfg.SynthesisMaxTokens)
	if err != nil {
		log.WarnContext(ctx, "report synthesis failed", "error", err)
		return nil, &GenerationFailedError{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &GenerationFailedError{Err: err}
	}

	r := &Report{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		UserName:      user.Name,
		GeneratedAt:   s.now(),
		ModuleData:    *data,
		Content:       text,
		PromptVersion: s.cfg.PromptVersion,
		Model:         s.provider.ModelID(),
	}
	rec, err := r.record()
	if err != nil {
		return nil, err
	}
	if err := s.reports.Insert(ctx, rec); err != nil {
		return nil, storeError("save report", err)
	}

	log.InfoContext(ctx, "report generated",
		"report_id", r.ID,
		"themes", len(data.Freetext.ExtractedThemes),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return r, nil
}

// score classifies the three scored modules and harvests freetext.
func (s *Service) score(progress map[catalog.Module]*assessment.Progress) (*ModuleData, error) {
	var data ModuleData
	for _, m := range catalog.ScoredModules {
		res, err := scoring.ScoreModule(m, progress[m])
		if err != nil {
			return nil, err
		}
		switch m {
		case catalog.Strengths:
			data.Strengths = res.Strengths
		case catalog.Gifts:
			data.Gifts = res.Gifts
		case catalog.Vocational:
			data.Vocational = res.Vocational
		}
	}
	data.Freetext = freetext.Harvest(progress[catalog.Freetext], freetext.Options{IncludeAnything: s.cfg.IncludeAnything})
	return &data, nil
}

// LatestReport returns the user's most recent report, or nil if none exist.
func (s *Service) LatestReport(ctx context.Context, userID string) (*Report, error) {
	rec, err := s.reports.Latest(ctx, userID)
	if err != nil {
		return nil, storeError("load latest report", err)
	}
	if rec == nil {
		return nil, nil
	}
	return fromRecord(rec)
}

// History returns every report of the user, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]*Report, error) {
	recs, err := s.reports.Find(ctx, userID)
	if err != nil {
		return nil, storeError("load reports", err)
	}
	out := make([]*Report, 0, len(recs))
	for _, rec := range recs {
		r, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
