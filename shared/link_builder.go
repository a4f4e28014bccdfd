package shared

import (
	"fmt"
	"net/url"
)

// LinkBuilder produces the absolute URLs that go into outgoing digests.
type LinkBuilder struct {
	Host         string // our own host, e.g. skimbox.net
	PlatformHost string // source platform host, e.g. x.com
}

// PostUrl is the canonical URL of a saved post on the source platform.
func (lb *LinkBuilder) PostUrl(handle, itemId string) string {
	return fmt.Sprintf("https://%s/%s/status/%s", lb.PlatformHost, handle, itemId)
}

// ActionUrl points at our action callback endpoint. The payload is the
// canonical signed query string; sig goes last, outside the signed bytes.
// The signature is base64 and needs escaping, or query parsing on the
// receiving end mangles its + and = characters.
func (lb *LinkBuilder) ActionUrl(payload, sig string) string {
	return fmt.Sprintf("https://%s/a?%s&sig=%s", lb.Host, payload, url.QueryEscape(sig))
}

func (lb *LinkBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", lb.Host)
}
