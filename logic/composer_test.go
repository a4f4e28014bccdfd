package logic

import (
	"github.com/stretchr/testify/assert"
	"net/url"
	"skimbox/shared"
	"skimbox/texts"
	"strings"
	"testing"
	"time"
)

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func makeTestComposer(now time.Time) IComposer {
	cfg := &shared.Config{
		Host:          "skimbox.example",
		PlatformHost:  "twitter.com",
		DigestMaxKB:   30,
		SnippetMaxLen: 140,
	}
	cfg.Secrets.HmacKey = "test-hmac-key"
	return NewComposer(cfg, NewSigner(cfg), texts.NewTexts(), &fixedClock{now})
}

func makeItem(id, handle, name, text string) *SourceItem {
	return &SourceItem{
		Id:          id,
		Text:        text,
		AuthorId:    "a-" + id,
		Handle:      handle,
		DisplayName: name,
	}
}

func Test_Compose_SubjectUsesDayName(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) // a Friday
	c := makeTestComposer(now)

	subject, _ := c.Compose("u1", []*SourceItem{})

	assert.Equal(t, "Skimbox for Fri", subject)
}

func Test_Compose_MarkersAlwaysPresent(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	c := makeTestComposer(now)

	// Even with no items the header and footer actions are there
	_, body := c.Compose("u1", []*SourceItem{})

	assert.Contains(t, body, "Your saved posts for today:")
	assert.Contains(t, body, "—\n")
	assert.Contains(t, body, "Snooze https://skimbox.example/a?u=u1&t=")
	assert.Contains(t, body, "Pause  https://skimbox.example/a?u=u1&t=")
	assert.Contains(t, body, "More   https://skimbox.example/a?u=u1&t=")
}

func Test_Compose_ItemBlock(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	c := makeTestComposer(now)
	item := makeItem("12345", "jdoe", "Jane Doe", "A thought worth keeping")

	_, body := c.Compose("u1", []*SourceItem{item})

	assert.Contains(t, body, "• Jane Doe @jdoe\n")
	assert.Contains(t, body, "A thought worth keeping\n")
	assert.Contains(t, body, "https://twitter.com/jdoe/status/12345\n")
	assert.Contains(t, body, "Pin  https://skimbox.example/a?u=u1&t=")
	assert.Contains(t, body, "Hide https://skimbox.example/a?u=u1&t=")
	assert.Contains(t, body, "&act=pin&id=12345&sig=")
	assert.Contains(t, body, "&act=hide&id=12345&sig=")
}

func Test_Compose_ActionLinksVerify(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := &shared.Config{
		Host:          "skimbox.example",
		PlatformHost:  "twitter.com",
		DigestMaxKB:   30,
		SnippetMaxLen: 140,
	}
	cfg.Secrets.HmacKey = "test-hmac-key"
	signer := NewSigner(cfg)
	c := NewComposer(cfg, signer, texts.NewTexts(), &fixedClock{now})

	_, body := c.Compose("u1", []*SourceItem{makeItem("12345", "jdoe", "Jane Doe", "hello")})

	// Every action URL in the body must verify against its own payload
	checked := 0
	for _, line := range strings.Split(body, "\n") {
		idx := strings.Index(line, "https://skimbox.example/a?")
		if idx < 0 {
			continue
		}
		query := line[idx+len("https://skimbox.example/a?"):]
		sigIdx := strings.LastIndex(query, "&sig=")
		assert.True(t, sigIdx > 0)
		payload := query[:sigIdx]
		sig, err := url.QueryUnescape(query[sigIdx+len("&sig="):])
		assert.Nil(t, err)
		assert.True(t, signer.Verify(payload, sig))
		checked++
	}
	assert.Equal(t, 5, checked) // pin, hide, snooze, pause, more
}

func Test_Compose_SnippetCleanup(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	c := makeTestComposer(now)
	item := makeItem("1", "h", "N", "<b>Hello</b> &amp; world\n\nwith   spaces")

	_, body := c.Compose("u1", []*SourceItem{item})

	assert.Contains(t, body, "Hello & world with spaces\n")
}

func Test_Compose_SnippetTruncation(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	c := makeTestComposer(now)
	long := strings.Repeat("x", 200)

	_, body := c.Compose("u1", []*SourceItem{makeItem("1", "h", "N", long)})

	want := strings.Repeat("x", 137) + "..."
	assert.Contains(t, body, want+"\n")
	assert.NotContains(t, body, strings.Repeat("x", 138))
}

func Test_Compose_SnippetAtExactLimitNotTruncated(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	c := makeTestComposer(now)
	exact := strings.Repeat("y", 140)

	_, body := c.Compose("u1", []*SourceItem{makeItem("1", "h", "N", exact)})

	assert.Contains(t, body, exact+"\n")
	assert.NotContains(t, body, "...")
}

func Test_Compose_TypicalDigestWithinBudget(t *testing.T) {

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	c := makeTestComposer(now)

	items := make([]*SourceItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, makeItem("100000000000000000", "somehandle", "Some Display Name",
			strings.Repeat("word ", 90)))
	}

	_, body := c.Compose("u1", items)

	assert.True(t, ValidateSize(body, 30))
}

func Test_SizeHelpers(t *testing.T) {

	assert.Equal(t, 5, EstimateSize("hello"))
	// Multi-byte runes count as bytes, not characters
	assert.Equal(t, 4, EstimateSize("éé"))

	assert.True(t, ValidateSize(strings.Repeat("a", 1024), 1))
	assert.False(t, ValidateSize(strings.Repeat("a", 1025), 1))
}
