// Package admin gives allow-listed operators read access across users.
package admin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/report"
	"github.com/abhisek/discern/internal/store"
)

var (
	ErrForbidden    = errors.New("admin access required")
	ErrUserNotFound = errors.New("user not found")
)

// AllowList is the set of admin e-mail addresses, compared case-insensitively.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds an AllowList from addresses; blanks are ignored.
func NewAllowList(emails ...string) AllowList {
	a := AllowList{emails: make(map[string]struct{})}
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			a.emails[e] = struct{}{}
		}
	}
	return a
}

// AllowListFromEnv reads the comma-separated DISCERN_ADMIN_EMAILS.
func AllowListFromEnv() AllowList {
	return NewAllowList(strings.Split(os.Getenv("DISCERN_ADMIN_EMAILS"), ",")...)
}

// Allows reports whether u may use the admin capability.
func (a AllowList) Allows(u auth.User) bool {
	if u.Email == "" {
		return false
	}
	_, ok := a.emails[strings.ToLower(u.Email)]
	return ok
}

// Len returns the number of admin addresses.
func (a AllowList) Len() int { return len(a.emails) }

// UserSummary is one row of the user listing.
type UserSummary struct {
	UserID           string           `json:"userId"`
	StartedModules   []catalog.Module `json:"startedModules"`
	CompletedModules []catalog.Module `json:"completedModules"`
	LastActivity     time.Time        `json:"lastActivity"`
}

// UserDetail is everything recorded for one user.
type UserDetail struct {
	UserID   string                 `json:"userId"`
	Progress []*assessment.Progress `json:"progress"`
	Report   *report.Report         `json:"report"`
}

// Service answers admin queries.
type Service struct {
	allow    AllowList
	progress store.ProgressRepo
	reports  *report.Service
}

// NewService creates an admin Service.
func NewService(allow AllowList, progress store.ProgressRepo, reports *report.Service) *Service {
	return &Service{allow: allow, progress: progress, reports: reports}
}

// Authorize returns ErrForbidden unless u is allow-listed.
func (s *Service) Authorize(u auth.User) error {
	if !s.allow.Allows(u) {
		return ErrForbidden
	}
	return nil
}

// ListUsers summarizes every user with recorded progress, most recently
// active first.
func (s *Service) ListUsers(ctx context.Context, caller auth.User) ([]UserSummary, error) {
	if err := s.Authorize(caller); err != nil {
		return nil, err
	}
	all, err := s.progress.Find(ctx, store.ProgressFilter{})
	if err != nil {
		return nil, fmt.Errorf("list progress: %w: %w", store.ErrUnavailable, err)
	}

	index := make(map[string]*UserSummary)
	var order []string
	for _, p := range all {
		u, ok := index[p.UserID]
		if !ok {
			u = &UserSummary{UserID: p.UserID, StartedModules: []catalog.Module{}, CompletedModules: []catalog.Module{}}
			index[p.UserID] = u
			order = append(order, p.UserID)
		}
		u.StartedModules = append(u.StartedModules, p.Module)
		if p.Completed {
			u.CompletedModules = append(u.CompletedModules, p.Module)
		}
		if p.UpdatedAt.After(u.LastActivity) {
			u.LastActivity = p.UpdatedAt
		}
	}

	out := make([]UserSummary, 0, len(order))
	for _, id := range order {
		u := index[id]
		sortModules(u.StartedModules)
		sortModules(u.CompletedModules)
		out = append(out, *u)
	}
	return out, nil
}

func sortModules(ms []catalog.Module) {
	slices.SortFunc(ms, func(a, b catalog.Module) int {
		return slices.Index(catalog.Modules, a) - slices.Index(catalog.Modules, b)
	})
}

// User returns the progress and latest report of userID.
func (s *Service) User(ctx context.Context, caller auth.User, userID string) (*UserDetail, error) {
	if err := s.Authorize(caller); err != nil {
		return nil, err
	}

	detail := &UserDetail{UserID: userID, Progress: []*assessment.Progress{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		byModule, err := report.LoadProgress(gctx, s.progress, userID)
		if err != nil {
			return err
		}
		for _, m := range catalog.Modules {
			if p, ok := byModule[m]; ok {
				detail.Progress = append(detail.Progress, p)
			}
		}
		return nil
	})
	g.Go(func() error {
		r, err := s.reports.LatestReport(gctx, userID)
		detail.Report = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(detail.Progress) == 0 && detail.Report == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return detail, nil
}
