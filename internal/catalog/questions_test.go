package catalog

import (
	"strings"
	"testing"
)

func TestQuestions_BankSizes(t *testing.T) {
	tests := []struct {
		module Module
		want   int
	}{
		{Strengths, 0},
		{Gifts, 32},
		{Vocational, 20},
		{Freetext, 5},
	}
	for _, tt := range tests {
		if got := len(Questions(tt.module)); got != tt.want {
			t.Errorf("Questions(%q): got %d, want %d", tt.module, got, tt.want)
		}
	}
}

func TestQuestions_PrefixesResolve(t *testing.T) {
	for _, m := range []Module{Gifts, Vocational} {
		seen := map[string]bool{}
		for _, q := range Questions(m) {
			if seen[q.ID] {
				t.Errorf("%s: duplicate question %q", m, q.ID)
			}
			seen[q.ID] = true
			prefix, _, _ := strings.Cut(q.ID, "-")
			if _, ok := Resolve(m, prefix); !ok {
				t.Errorf("%s: question %q has no catalog entry", m, q.ID)
			}
		}
	}
}

func TestQuestions_OrderFollowsCatalog(t *testing.T) {
	gq := Questions(Gifts)
	if gq[0].ID != "wis-1" || gq[len(gq)-1].ID != "giv-2" {
		t.Errorf("gifts bank runs %s..%s, want wis-1..giv-2", gq[0].ID, gq[len(gq)-1].ID)
	}
	vq := Questions(Vocational)
	if vq[0].ID != "fd-1" || vq[len(vq)-1].ID != "pm-4" {
		t.Errorf("vocational bank runs %s..%s, want fd-1..pm-4", vq[0].ID, vq[len(vq)-1].ID)
	}
}

func TestFindQuestion(t *testing.T) {
	tests := []struct {
		module  Module
		id      string
		want    QuestionKind
		wantHit bool
	}{
		{Gifts, "wis-1", QuestionChoice, true},
		{Gifts, "wis-2", QuestionScale, true},
		{Gifts, "wis-3", "", false},
		{Gifts, "fd-1", "", false},
		{Vocational, "fd-3", QuestionScale, true},
		{Vocational, "fd-4", QuestionChoice, true},
		{Freetext, QuestionAnything, QuestionFreetext, true},
		{Freetext, "wis-1", "", false},
		{Strengths, "sp-7", QuestionOpen, true},
		{Strengths, "zz-99", "", false},
		{Strengths, "sp-0", "", false},
		{Strengths, "sp-x", "", false},
		{Strengths, "sp", "", false},
	}
	for _, tt := range tests {
		q, ok := FindQuestion(tt.module, tt.id)
		if ok != tt.wantHit {
			t.Errorf("FindQuestion(%s, %q): found=%v, want %v", tt.module, tt.id, ok, tt.wantHit)
			continue
		}
		if ok && q.Kind != tt.want {
			t.Errorf("FindQuestion(%s, %q): kind %q, want %q", tt.module, tt.id, q.Kind, tt.want)
		}
	}
}

func TestQuestion_Options(t *testing.T) {
	q, _ := FindQuestion(Vocational, "cc-2")
	if !q.Accepts("cc-high") || q.Accepts("high") {
		t.Errorf("cc-2 options = %v", q.Options)
	}
	q, _ = FindQuestion(Vocational, "pm-4")
	if !q.Accepts("pm") || !q.Accepts("other") {
		t.Errorf("pm-4 options = %v", q.Options)
	}
	q, _ = FindQuestion(Freetext, QuestionPassions)
	if q.MaxLength != FreetextMaxLength {
		t.Errorf("freetext max length = %d, want %d", q.MaxLength, FreetextMaxLength)
	}
}
