package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"skimbox/shared"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_source_client.go -package mocks skimbox/logic ISourceClient

// SourceItem is a saved post as the source platform reports it.
type SourceItem struct {
	Id          string
	Text        string
	AuthorId    string
	Handle      string
	DisplayName string
	CreatedAt   time.Time
}

// ISourceClient talks to the bookmark source platform's API.
type ISourceClient interface {
	// FetchSavedItems pages through the account's saved posts, newest first,
	// up to maxItems.
	FetchSavedItems(ctx context.Context, token, accountId string, maxItems int) ([]*SourceItem, error)
	// FetchItemDetails hydrates a specific id set.
	FetchItemDetails(ctx context.Context, token string, ids []string) ([]*SourceItem, error)
}

type sourceClient struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
}

func NewSourceClient(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) ISourceClient {
	return &sourceClient{cfg, logger, metrics}
}

// Wire format of the source API's post listing responses.
type sourcePost struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	AuthorId  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

type sourceUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type sourceListResp struct {
	Data     []sourcePost `json:"data"`
	Includes struct {
		Users []sourceUser `json:"users"`
	} `json:"includes"`
	Meta struct {
		NextToken string `json:"next_token"`
	} `json:"meta"`
}

func (sc *sourceClient) FetchSavedItems(ctx context.Context, token, accountId string, maxItems int) ([]*SourceItem, error) {

	obs := sc.metrics.StartSourceFetch("bookmarks")
	defer obs.Finish()

	res := make([]*SourceItem, 0)
	nextToken := ""
	pageSize := sc.cfg.SourceApi.PageSize

	// A page with an empty data array but a non-empty next_token must not spin
	// forever; maxPages is the most pages a well-behaved listing can need.
	maxPages := (maxItems + pageSize - 1) / pageSize

	for page := 0; page < maxPages && len(res) < maxItems; page++ {
		if page > 0 && sc.cfg.SourceApi.PageDelayMs > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(sc.cfg.SourceApi.PageDelayMs) * time.Millisecond):
			}
		}
		reqUrl := fmt.Sprintf("%s/users/%s/bookmarks?max_results=%d&tweet.fields=created_at,author_id&user.fields=name,username&expansions=author_id",
			sc.cfg.SourceApi.BaseUrl, url.PathEscape(accountId), pageSize)
		if nextToken != "" {
			reqUrl += "&pagination_token=" + url.QueryEscape(nextToken)
		}

		var listResp sourceListResp
		if err := sc.getJson(ctx, token, reqUrl, &listResp); err != nil {
			return nil, err
		}
		res = append(res, itemsFromResp(&listResp)...)

		nextToken = listResp.Meta.NextToken
		if nextToken == "" {
			break
		}
	}

	if len(res) > maxItems {
		res = res[:maxItems]
	}
	return res, nil
}

func (sc *sourceClient) FetchItemDetails(ctx context.Context, token string, ids []string) ([]*SourceItem, error) {

	if len(ids) == 0 {
		return []*SourceItem{}, nil
	}

	obs := sc.metrics.StartSourceFetch("details")
	defer obs.Finish()

	reqUrl := fmt.Sprintf("%s/tweets?ids=%s&tweet.fields=created_at,author_id&user.fields=name,username&expansions=author_id",
		sc.cfg.SourceApi.BaseUrl, url.QueryEscape(strings.Join(ids, ",")))

	var listResp sourceListResp
	if err := sc.getJson(ctx, token, reqUrl, &listResp); err != nil {
		return nil, err
	}
	return itemsFromResp(&listResp), nil
}

func (sc *sourceClient) getJson(ctx context.Context, token, reqUrl string, obj any) error {

	req, err := http.NewRequestWithContext(ctx, "GET", reqUrl, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	client := http.Client{}
	client.Timeout = time.Second * time.Duration(sc.cfg.SourceApi.TimeoutSec)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("source API error: status %s: %s", resp.Status, bodyBytes)
		sc.logger.Warnf("%s", msg)
		return fmt.Errorf("%s", msg)
	}
	return json.Unmarshal(bodyBytes, obj)
}

// itemsFromResp joins posts to their authors; posts whose author is missing
// from the includes section are dropped, matching the provider's own advice.
func itemsFromResp(resp *sourceListResp) []*SourceItem {
	users := make(map[string]*sourceUser)
	for i := range resp.Includes.Users {
		u := &resp.Includes.Users[i]
		users[u.Id] = u
	}
	res := make([]*SourceItem, 0, len(resp.Data))
	for _, post := range resp.Data {
		user, ok := users[post.AuthorId]
		if !ok {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339, post.CreatedAt)
		res = append(res, &SourceItem{
			Id:          post.Id,
			Text:        post.Text,
			AuthorId:    post.AuthorId,
			Handle:      user.Username,
			DisplayName: user.Name,
			CreatedAt:   createdAt,
		})
	}
	return res
}
