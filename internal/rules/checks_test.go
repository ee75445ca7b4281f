package rules

import (
	"testing"

	"github.com/nao1215/a11yaudit/internal/model"
)

func TestDefaultChecksOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		model.RuleHTMLLang,
		model.RuleImgAlt,
		model.RuleSingleH1,
		model.RuleHeadingOrder,
		model.RuleEmptyLinks,
		model.RuleFormLabels,
		model.RuleLandmarkMain,
		model.RuleLandmarkNav,
	}

	checks := DefaultChecks()
	if len(checks) != len(want) {
		t.Fatalf("DefaultChecks() returned %d checks, want %d", len(checks), len(want))
	}
	for i, check := range checks {
		if check.Rule() != want[i] {
			t.Errorf("DefaultChecks()[%d].Rule() = %q, want %q", i, check.Rule(), want[i])
		}
	}
}

func TestLangCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "lang attribute present",
			markup: `<html lang="en"><body></body></html>`,
		},
		{
			name:   "lang attribute with spaces around equals",
			markup: `<html lang = "ja"><body></body></html>`,
		},
		{
			name:   "lang among other attributes",
			markup: `<html class="page" lang="en-US"><body></body></html>`,
		},
		{
			name:        "lang attribute missing",
			markup:      `<html><body></body></html>`,
			wantMessage: "Missing lang attribute on <html> tag",
			wantPenalty: 10,
		},
		{
			name:        "no html tag at all",
			markup:      `<body><p>fragment</p></body>`,
			wantMessage: "Missing lang attribute on <html> tag",
			wantPenalty: 10,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewLangCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleHTMLLang, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestImgAltCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "no images",
			markup: `<html lang="en"><body><p>text only</p></body></html>`,
		},
		{
			name:   "all images have alt",
			markup: `<img src="a.png" alt="logo"><img src="b.png" alt="">`,
		},
		{
			name:        "one image missing alt",
			markup:      `<img src="a.png">`,
			wantMessage: "1 image(s) missing alt attribute",
			wantPenalty: 5,
		},
		{
			name:        "mixed images",
			markup:      `<img src="a.png" alt="ok"><img src="b.png"><img src="c.png">`,
			wantMessage: "2 image(s) missing alt attribute",
			wantPenalty: 10,
		},
		{
			name: "penalty capped at twenty",
			markup: `<img src="1"><img src="2"><img src="3"><img src="4">` +
				`<img src="5"><img src="6">`,
			wantMessage: "6 image(s) missing alt attribute",
			wantPenalty: 20,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewImgAltCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleImgAlt, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestSingleH1CheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "exactly one h1",
			markup: `<h1>Title</h1><h2>Section</h2>`,
		},
		{
			name:        "no h1",
			markup:      `<h2>Section</h2>`,
			wantMessage: "No <h1> heading found",
			wantPenalty: 5,
		},
		{
			name:        "multiple h1",
			markup:      `<h1>One</h1><h1 class="x">Two</h1><h1>Three</h1>`,
			wantMessage: "Multiple <h1> headings found (3)",
			wantPenalty: 5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewSingleH1Check().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleSingleH1, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestHeadingOrderCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "strictly sequential",
			markup: `<h1>a</h1><h2>b</h2><h3>c</h3>`,
		},
		{
			name:   "decreasing levels allowed",
			markup: `<h1>a</h1><h2>b</h2><h3>c</h3><h2>d</h2>`,
		},
		{
			name:   "no headings",
			markup: `<p>plain</p>`,
		},
		{
			name:   "single heading at any level",
			markup: `<h3>orphan</h3>`,
		},
		{
			name:        "skip from h1 to h3",
			markup:      `<h1>a</h1><h3>b</h3>`,
			wantMessage: "Heading level jumps from <h1> to <h3>",
			wantPenalty: 5,
		},
		{
			name:        "only first skip reported",
			markup:      `<h1>a</h1><h4>b</h4><h2>c</h2><h6>d</h6>`,
			wantMessage: "Heading level jumps from <h1> to <h4>",
			wantPenalty: 5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewHeadingOrderCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleHeadingOrder, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestEmptyLinkCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "links with text",
			markup: `<a href="/a">home</a><a href="/b">docs</a>`,
		},
		{
			name:        "one empty link",
			markup:      `<a href="/a"></a>`,
			wantMessage: "1 link(s) with no text content",
			wantPenalty: 3,
		},
		{
			name:        "whitespace only counts as empty",
			markup:      "<a href=\"/a\">\n\t </a>",
			wantMessage: "1 link(s) with no text content",
			wantPenalty: 3,
		},
		{
			name:        "penalty capped at ten",
			markup:      `<a href="/1"></a><a href="/2"></a><a href="/3"></a><a href="/4"></a>`,
			wantMessage: "4 link(s) with no text content",
			wantPenalty: 10,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewEmptyLinkCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleEmptyLinks, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestFormLabelCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "no inputs",
			markup: `<form><button>send</button></form>`,
		},
		{
			name:   "inputs matched by labels",
			markup: `<label for="n">Name</label><input type="text" id="n">`,
		},
		{
			name:   "non-labelable input types ignored",
			markup: `<input type="hidden" name="csrf"><input type="submit" value="go">`,
		},
		{
			name:   "surplus of labels is fine",
			markup: `<label>a</label><label>b</label><input type="email">`,
		},
		{
			name:        "one unlabeled text input",
			markup:      `<input type="text" name="q">`,
			wantMessage: "1 form input(s) potentially missing labels",
			wantPenalty: 5,
		},
		{
			name: "penalty capped at fifteen",
			markup: `<input type="text"><input type="email"><input type="password">` +
				`<input type="tel"><input type="search">`,
			wantMessage: "5 form input(s) potentially missing labels",
			wantPenalty: 15,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewFormLabelCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleFormLabels, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestLandmarkMainCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "main element present",
			markup: `<main><p>content</p></main>`,
		},
		{
			name:   "role main present",
			markup: `<div role="main"><p>content</p></div>`,
		},
		{
			name:   "unquoted role value",
			markup: `<div role=main></div>`,
		},
		{
			name:        "no main landmark",
			markup:      `<div id="content"></div>`,
			wantMessage: "No <main> landmark found",
			wantPenalty: 3,
		},
		{
			name:        "maintenance text does not satisfy the rule",
			markup:      `<div class="maintenance" role="mainmenu"></div>`,
			wantMessage: "No <main> landmark found",
			wantPenalty: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewLandmarkMainCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleLandmarkMain, tt.wantMessage, tt.wantPenalty)
		})
	}
}

func TestLandmarkNavCheckInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markup      string
		wantMessage string
		wantPenalty int
	}{
		{
			name:   "nav element present",
			markup: `<nav><a href="/">home</a></nav>`,
		},
		{
			name:   "role navigation present",
			markup: `<div role="navigation"></div>`,
		},
		{
			name:        "no nav landmark",
			markup:      `<div class="menu"></div>`,
			wantMessage: "No <nav> landmark found",
			wantPenalty: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, penalty := NewLandmarkNavCheck().Inspect(tt.markup)
			assertCheckResult(t, issue, penalty, model.RuleLandmarkNav, tt.wantMessage, tt.wantPenalty)
		})
	}
}

// assertCheckResult verifies a single Inspect result. An empty wantMessage
// means the check is expected to pass.
func assertCheckResult(t *testing.T, issue *model.Issue, penalty int, rule, wantMessage string, wantPenalty int) {
	t.Helper()

	if wantMessage == "" {
		if issue != nil {
			t.Fatalf("Inspect() = %+v, want no issue", issue)
		}
		if penalty != 0 {
			t.Errorf("Inspect() penalty = %d, want 0", penalty)
		}
		return
	}

	if issue == nil {
		t.Fatalf("Inspect() = nil, want issue with message %q", wantMessage)
	}
	if issue.Rule != rule {
		t.Errorf("issue.Rule = %q, want %q", issue.Rule, rule)
	}
	if issue.Message != wantMessage {
		t.Errorf("issue.Message = %q, want %q", issue.Message, wantMessage)
	}
	if issue.Severity != model.RuleSeverity(rule) {
		t.Errorf("issue.Severity = %v, want %v", issue.Severity, model.RuleSeverity(rule))
	}
	if issue.Suggestion == "" {
		t.Error("issue.Suggestion is empty, want remediation text from the rule catalog")
	}
	if penalty != wantPenalty {
		t.Errorf("Inspect() penalty = %d, want %d", penalty, wantPenalty)
	}
}
