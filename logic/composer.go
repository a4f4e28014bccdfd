package logic

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"regexp"
	"skimbox/dal"
	"skimbox/shared"
	"skimbox/texts"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_composer.go -package mocks skimbox/logic IComposer

const snippetEllipsis = "..."

// IComposer turns a selected item list into a plain-text digest. Composition
// never fails; the selection count and per-item truncation are what keep the
// body inside the size budget.
type IComposer interface {
	Compose(userId string, items []*SourceItem) (subject, body string)
}

type composer struct {
	cfg    *shared.Config
	signer ISigner
	txt    texts.ITexts
	clock  shared.IClock
	lb     shared.LinkBuilder
	policy *bluemonday.Policy
	reWs   *regexp.Regexp
}

func NewComposer(cfg *shared.Config, signer ISigner, txt texts.ITexts, clock shared.IClock) IComposer {
	return &composer{
		cfg:    cfg,
		signer: signer,
		txt:    txt,
		clock:  clock,
		lb:     shared.LinkBuilder{Host: cfg.Host, PlatformHost: cfg.PlatformHost},
		policy: bluemonday.StrictPolicy(),
		reWs:   regexp.MustCompile(`\s+`),
	}
}

// Compose renders the digest: one block per item (author, snippet, canonical
// post URL, Pin and Hide links) and a footer with the account-level actions.
// The subject's day name comes from the dispatch process's clock, not the
// recipient's timezone; near midnight a distant recipient can see tomorrow's
// or yesterday's name. Kept as-is.
func (c *composer) Compose(userId string, items []*SourceItem) (subject, body string) {

	dayName := c.clock.Now().Format("Mon")
	subject = c.txt.WithVals("digest_subject.txt", map[string]string{"day": dayName})

	var sb strings.Builder
	sb.WriteString(c.txt.Get("digest_header.txt"))
	sb.WriteString("\n\n")

	for _, item := range items {
		snippet := c.makeSnippet(item.Text)
		postUrl := c.lb.PostUrl(item.Handle, item.Id)
		pinUrl := c.actionLink(userId, dal.ActionPin, item.Id)
		hideUrl := c.actionLink(userId, dal.ActionHide, item.Id)

		sb.WriteString("• " + item.DisplayName + " @" + item.Handle + "\n")
		sb.WriteString(snippet + "\n")
		sb.WriteString(postUrl + "\n")
		sb.WriteString("Pin  " + pinUrl + "\n")
		sb.WriteString("Hide " + hideUrl + "\n\n")
	}

	sb.WriteString("—\n")
	sb.WriteString("Snooze " + c.actionLink(userId, dal.ActionSnooze, "") + "\n")
	sb.WriteString("Pause  " + c.actionLink(userId, dal.ActionPause, "") + "\n")
	sb.WriteString("More   " + c.actionLink(userId, dal.ActionMore, "") + "\n")

	return subject, sb.String()
}

func (c *composer) actionLink(userId, action, itemId string) string {
	payload := c.signer.BuildPayload(userId, c.signer.NewNonce(), action, itemId)
	return c.lb.ActionUrl(payload, c.signer.Sign(payload))
}

// makeSnippet strips any markup the source smuggled into the post text,
// collapses all whitespace runs to single spaces, and hard-truncates to the
// configured length. A truncated snippet is maxLen-3 visible characters plus
// the three-character ellipsis, never more than maxLen in total.
func (c *composer) makeSnippet(text string) string {
	cleaned := html.UnescapeString(c.policy.Sanitize(text))
	cleaned = strings.TrimSpace(c.reWs.ReplaceAllString(cleaned, " "))

	maxLen := c.cfg.SnippetMaxLen
	runes := []rune(cleaned)
	if len(runes) <= maxLen {
		return cleaned
	}
	return string(runes[:maxLen-len(snippetEllipsis)]) + snippetEllipsis
}

// EstimateSize measures a body's size in bytes under UTF-8.
func EstimateSize(body string) int {
	return len(body)
}

// ValidateSize reports whether a body fits the given budget in kilobytes.
func ValidateSize(body string, maxKB int) bool {
	return EstimateSize(body) <= maxKB*1024
}
