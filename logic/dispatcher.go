package logic

import (
	"context"
	"fmt"
	"skimbox/dal"
	"skimbox/shared"
	"skimbox/texts"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_dispatcher.go -package mocks skimbox/logic IDispatcher

const poolWindowDays = 90

// RunReport summarizes one daily dispatch run. It is what the cron endpoint
// returns to the scheduler.
type RunReport struct {
	Processed int            `json:"processed"`
	Sent      int            `json:"sent"`
	Skipped   int            `json:"skipped"`
	Errors    int            `json:"errors"`
	Details   []*UserOutcome `json:"details"`
}

type UserOutcome struct {
	UserId    string `json:"user_id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	ItemCount int    `json:"item_count,omitempty"`
}

const (
	statusSent    = "sent"
	statusSkipped = "skipped"
	statusErrored = "errored"
)

const (
	skipSnoozed     = "snoozed"
	skipAlreadySent = "already sent today"
	skipNoItems     = "no items available"
)

// Action is a verified one-tap request, ready to apply.
type Action struct {
	UserId string
	Action string
	ItemId string
}

type IDispatcher interface {
	// RunDaily processes every active user once. A failure for one user is
	// recorded in the report and does not abort the rest of the batch.
	RunDaily(ctx context.Context) *RunReport
	// SendMore sends an extra, smaller digest outside the daily cycle.
	SendMore(ctx context.Context, userId string) error
	// HandleAction applies a one-tap action whose signature has already been
	// verified.
	HandleAction(ctx context.Context, act *Action) error
}

type dispatcher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	source    ISourceClient
	composer  IComposer
	transport ITransport
	txt       texts.ITexts
	clock     shared.IClock
	metrics   IMetrics
	userLocks sync.Map // user id -> *sync.Mutex
}

func NewDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	source ISourceClient,
	composer IComposer,
	transport ITransport,
	txt texts.ITexts,
	clock shared.IClock,
	metrics IMetrics,
) IDispatcher {
	return &dispatcher{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		source:    source,
		composer:  composer,
		transport: transport,
		txt:       txt,
		clock:     clock,
		metrics:   metrics,
	}
}

// lockUser serializes all dispatch work per user. The daily run and a
// concurrent "more" request must not interleave their read-check-send steps.
func (d *dispatcher) lockUser(userId string) *sync.Mutex {
	mu, _ := d.userLocks.LoadOrStore(userId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (d *dispatcher) RunDaily(ctx context.Context) *RunReport {

	obs := d.metrics.StartDispatchRun()
	defer obs.Finish()

	report := &RunReport{Details: make([]*UserOutcome, 0)}

	users, err := d.repo.GetActiveUsers()
	if err != nil {
		d.logger.Errorf("Failed to load active users; aborting run: %v", err)
		report.Errors = 1
		return report
	}
	d.metrics.ActiveUsers(len(users))
	d.logger.Infof("Daily dispatch: %d active users", len(users))

	for _, usr := range users {
		if ctx.Err() != nil {
			d.logger.Warn("Daily dispatch canceled mid-run")
			break
		}
		outcome := d.processUser(ctx, usr)
		report.Processed += 1
		report.Details = append(report.Details, outcome)
		switch outcome.Status {
		case statusSent:
			report.Sent += 1
			d.metrics.DigestSent()
		case statusSkipped:
			report.Skipped += 1
			d.metrics.DigestSkipped(outcome.Reason)
		case statusErrored:
			report.Errors += 1
			d.metrics.DigestErrored()
		}
	}

	d.logger.Infof("Daily dispatch done: %d processed, %d sent, %d skipped, %d errors",
		report.Processed, report.Sent, report.Skipped, report.Errors)
	return report
}

// processUser runs the full pipeline for one user. Panics from collaborators
// are contained here so one poisoned user cannot take down the batch.
func (d *dispatcher) processUser(ctx context.Context, usr *dal.User) (outcome *UserOutcome) {

	outcome = &UserOutcome{UserId: usr.Id, Email: usr.Email}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("Panic while processing user %s: %v", usr.Id, r)
			outcome.Status = statusErrored
			outcome.Reason = fmt.Sprintf("panic: %v", r)
		}
	}()

	mu := d.lockUser(usr.Id)
	mu.Lock()
	defer mu.Unlock()

	now := d.clock.Now()

	// Snoozed today, in the user's own timezone?
	lastSnoozed, err := d.repo.GetLastSnoozedAt(usr.Id)
	if err != nil {
		return errored(outcome, err)
	}
	if lastSnoozed != nil && shared.SameLocalDay(*lastSnoozed, now, usr.Timezone) {
		return skipped(outcome, skipSnoozed)
	}

	// Already got their digest today? This is what makes retried cron calls
	// harmless.
	lastSent, err := d.repo.GetLastSentAt(usr.Id)
	if err != nil {
		return errored(outcome, err)
	}
	if !lastSent.IsZero() && shared.SameLocalDay(lastSent, now, usr.Timezone) {
		return skipped(outcome, skipAlreadySent)
	}

	// Sync fresh bookmarks into the local pool
	fetched, err := d.source.FetchSavedItems(ctx, usr.SourceToken, usr.SourceAccountId, d.cfg.SourceApi.MaxItems)
	if err != nil {
		return errored(outcome, err)
	}
	for _, si := range fetched {
		_, err = d.repo.AddItemIfNew(&dal.Item{
			Id:          si.Id,
			UserId:      usr.Id,
			AuthorId:    si.AuthorId,
			Handle:      si.Handle,
			DisplayName: si.DisplayName,
			Text:        si.Text,
			FirstSeenAt: now,
		})
		if err != nil {
			return errored(outcome, err)
		}
	}

	selected, err := d.selectItems(usr.Id, usr.SendCount, now)
	if err != nil {
		return errored(outcome, err)
	}
	if len(selected) == 0 {
		return skipped(outcome, skipNoItems)
	}

	if err = d.composeAndSend(ctx, usr, selected, "", now); err != nil {
		return errored(outcome, err)
	}

	outcome.Status = statusSent
	outcome.ItemCount = len(selected)
	return outcome
}

// selectItems builds the scored pool and samples it down to count.
func (d *dispatcher) selectItems(userId string, count int, now time.Time) ([]*Candidate, error) {

	since := now.AddDate(0, 0, -poolWindowDays)
	pool, err := d.repo.GetDigestPool(userId, since)
	if err != nil {
		return nil, err
	}
	d.metrics.CandidatePoolSize(len(pool))

	candidates := BuildCandidates(pool, now)
	return Sample(candidates, count, now), nil
}

// composeAndSend renders the digest for the selected candidates, delivers it,
// and records one send event per item. Events are written only after the
// transport accepts the mail: a failed delivery leaves the items eligible for
// the next run.
func (d *dispatcher) composeAndSend(ctx context.Context, usr *dal.User, selected []*Candidate,
	subjectPrefix string, now time.Time) error {

	ids := make([]string, 0, len(selected))
	for _, cand := range selected {
		ids = append(ids, cand.ItemId)
	}
	items, err := d.source.FetchItemDetails(ctx, usr.SourceToken, ids)
	if err != nil {
		return err
	}

	subject, body := d.composer.Compose(usr.Id, items)
	if !ValidateSize(body, d.cfg.DigestMaxKB) {
		d.logger.Warnf("Digest for %s is %d bytes, over the %d KB budget; sending anyway",
			usr.Id, EstimateSize(body), d.cfg.DigestMaxKB)
	}

	if err = d.transport.Send(ctx, usr.Email, subjectPrefix+subject, body); err != nil {
		return err
	}

	eventAction := dal.ActionSent
	if subjectPrefix != "" {
		eventAction = dal.ActionMore
	}
	for _, cand := range selected {
		if err = d.repo.AddSendEvent(usr.Id, cand.ItemId, eventAction, now); err != nil {
			return err
		}
	}
	return nil
}

func (d *dispatcher) SendMore(ctx context.Context, userId string) error {

	mu := d.lockUser(userId)
	mu.Lock()
	defer mu.Unlock()

	usr, err := d.repo.GetUser(userId)
	if err != nil {
		return err
	}
	if usr == nil {
		return ErrNotFound
	}

	now := d.clock.Now()
	selected, err := d.selectItems(userId, d.cfg.MoreSendCount, now)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		subject := d.txt.Get("nothing_more_subject.txt")
		body := d.txt.Get("nothing_more_body.txt")
		return d.transport.Send(ctx, usr.Email, subject, body)
	}

	return d.composeAndSend(ctx, usr, selected, "More ", now)
}

func (d *dispatcher) HandleAction(ctx context.Context, act *Action) error {

	usr, err := d.repo.GetUser(act.UserId)
	if err != nil {
		return err
	}
	if usr == nil {
		return ErrNotFound
	}
	if !usr.Active {
		return ErrUserPaused
	}

	now := d.clock.Now()

	switch act.Action {
	case dal.ActionPin, dal.ActionHide, dal.ActionOpen:
		if act.ItemId == "" {
			return fmt.Errorf("%w: action %q needs an item id", ErrValidation, act.Action)
		}
		err = d.repo.AddSendEvent(act.UserId, act.ItemId, act.Action, now)
	case dal.ActionSnooze:
		err = d.repo.SetLastSnoozedAt(act.UserId, now)
	case dal.ActionPause:
		err = d.repo.SetUserActive(act.UserId, false)
	case dal.ActionMore:
		err = d.SendMore(ctx, act.UserId)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrValidation, act.Action)
	}
	if err != nil {
		return err
	}

	d.metrics.ActionHandled(act.Action)
	return nil
}

func skipped(outcome *UserOutcome, reason string) *UserOutcome {
	outcome.Status = statusSkipped
	outcome.Reason = reason
	return outcome
}

func errored(outcome *UserOutcome, err error) *UserOutcome {
	outcome.Status = statusErrored
	outcome.Reason = err.Error()
	return outcome
}
