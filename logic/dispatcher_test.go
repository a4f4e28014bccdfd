package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"skimbox/dal"
	"skimbox/logic"
	"skimbox/shared"
	"skimbox/test/mocks"
	"testing"
	"time"
)

var dispNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type dispatcherHarness struct {
	cfg           *shared.Config
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockSource    *mocks.MockISourceClient
	mockComposer  *mocks.MockIComposer
	mockTransport *mocks.MockITransport
	mockTexts     *mocks.MockITexts
	mockClock     *mocks.MockIClock
	mockMetrics   *mocks.MockIMetrics
}

func setupDispatcherTest(t *testing.T) (*gomock.Controller, *dispatcherHarness, logic.IDispatcher) {

	ctrl := gomock.NewController(t)

	h := &dispatcherHarness{
		cfg: &shared.Config{
			Host:          "skimbox.example",
			PlatformHost:  "twitter.com",
			DigestMaxKB:   30,
			SnippetMaxLen: 140,
			MoreSendCount: 3,
			SourceApi:     shared.SourceApi{PageSize: 100, MaxItems: 800},
		},
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockSource:    mocks.NewMockISourceClient(ctrl),
		mockComposer:  mocks.NewMockIComposer(ctrl),
		mockTransport: mocks.NewMockITransport(ctrl),
		mockTexts:     mocks.NewMockITexts(ctrl),
		mockClock:     mocks.NewMockIClock(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
	}

	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(ctrl, h.mockMetrics)
	h.mockClock.EXPECT().Now().Return(dispNow).AnyTimes()

	disp := logic.NewDispatcher(h.cfg, h.mockLogger, h.mockRepo, h.mockSource, h.mockComposer,
		h.mockTransport, h.mockTexts, h.mockClock, h.mockMetrics)

	return ctrl, h, disp
}

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	// The f-variants are variadic; the trailing Any() absorbs zero or more args.
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupDummyMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartDispatchRun().Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartSourceFetch(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartMailSend().Return(obs).AnyTimes()
	mockMetrics.EXPECT().DigestSent().AnyTimes()
	mockMetrics.EXPECT().DigestSkipped(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DigestErrored().AnyTimes()
	mockMetrics.EXPECT().ActionHandled(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ActiveUsers(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CandidatePoolSize(gomock.Any()).AnyTimes()
}

func makeUser(id string) *dal.User {
	return &dal.User{
		Id:              id,
		Email:           id + "@example.com",
		Timezone:        "",
		Active:          true,
		SendCount:       2,
		SourceAccountId: "acct-" + id,
		SourceToken:     "tok-" + id,
	}
}

func makeSourceItem(id string) *logic.SourceItem {
	return &logic.SourceItem{
		Id:          id,
		Text:        "text of " + id,
		AuthorId:    "author-" + id,
		Handle:      "handle",
		DisplayName: "Display Name",
	}
}

func Test_RunDaily_SkipsSnoozedUser(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	snoozedAt := dispNow.Add(-2 * time.Hour)
	h.mockRepo.EXPECT().GetActiveUsers().Return([]*dal.User{usr}, nil)
	h.mockRepo.EXPECT().GetLastSnoozedAt("u1").Return(&snoozedAt, nil)

	report := disp.RunDaily(context.Background())

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, "snoozed", report.Details[0].Reason)
}

func Test_RunDaily_SnoozeFromYesterdayDoesNotSkip(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	snoozedAt := dispNow.AddDate(0, 0, -1)
	h.mockRepo.EXPECT().GetActiveUsers().Return([]*dal.User{usr}, nil)
	h.mockRepo.EXPECT().GetLastSnoozedAt("u1").Return(&snoozedAt, nil)
	h.mockRepo.EXPECT().GetLastSentAt("u1").Return(time.Time{}, nil)
	h.mockSource.EXPECT().FetchSavedItems(gomock.Any(), "tok-u1", "acct-u1", 800).
		Return([]*logic.SourceItem{}, nil)
	h.mockRepo.EXPECT().GetDigestPool("u1", gomock.Any()).Return([]*dal.PoolItem{}, nil)

	report := disp.RunDaily(context.Background())

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "no items available", report.Details[0].Reason)
}

func Test_RunDaily_SkipsAlreadySentToday(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	h.mockRepo.EXPECT().GetActiveUsers().Return([]*dal.User{usr}, nil)
	h.mockRepo.EXPECT().GetLastSnoozedAt("u1").Return(nil, nil)
	h.mockRepo.EXPECT().GetLastSentAt("u1").Return(dispNow.Add(-3*time.Hour), nil)

	report := disp.RunDaily(context.Background())

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "already sent today", report.Details[0].Reason)
}

func Test_RunDaily_SendsDigest(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	fetched := []*logic.SourceItem{makeSourceItem("i1"), makeSourceItem("i2")}
	pool := []*dal.PoolItem{
		{ItemId: "i1", AuthorId: "author-i1", FirstSeenAt: dispNow, EverSent: false},
		{ItemId: "i2", AuthorId: "author-i2", FirstSeenAt: dispNow, EverSent: false},
	}

	h.mockRepo.EXPECT().GetActiveUsers().Return([]*dal.User{usr}, nil)
	h.mockRepo.EXPECT().GetLastSnoozedAt("u1").Return(nil, nil)
	h.mockRepo.EXPECT().GetLastSentAt("u1").Return(time.Time{}, nil)
	h.mockSource.EXPECT().FetchSavedItems(gomock.Any(), "tok-u1", "acct-u1", 800).
		Return(fetched, nil)
	h.mockRepo.EXPECT().AddItemIfNew(gomock.Any()).Return(true, nil).Times(2)
	h.mockRepo.EXPECT().GetDigestPool("u1", dispNow.AddDate(0, 0, -90)).Return(pool, nil)
	h.mockSource.EXPECT().FetchItemDetails(gomock.Any(), "tok-u1", []string{"i1", "i2"}).
		Return(fetched, nil)
	h.mockComposer.EXPECT().Compose("u1", fetched).Return("subj", "body")
	h.mockTransport.EXPECT().Send(gomock.Any(), "u1@example.com", "subj", "body").Return(nil)
	h.mockRepo.EXPECT().AddSendEvent("u1", "i1", "sent", dispNow).Return(nil)
	h.mockRepo.EXPECT().AddSendEvent("u1", "i2", "sent", dispNow).Return(nil)

	report := disp.RunDaily(context.Background())

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 0, report.Errors)
	assert.Equal(t, 2, report.Details[0].ItemCount)
}

func Test_RunDaily_NoEventsWhenDeliveryFails(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	fetched := []*logic.SourceItem{makeSourceItem("i1")}
	pool := []*dal.PoolItem{
		{ItemId: "i1", AuthorId: "author-i1", FirstSeenAt: dispNow, EverSent: false},
	}

	h.mockRepo.EXPECT().GetActiveUsers().Return([]*dal.User{usr}, nil)
	h.mockRepo.EXPECT().GetLastSnoozedAt("u1").Return(nil, nil)
	h.mockRepo.EXPECT().GetLastSentAt("u1").Return(time.Time{}, nil)
	h.mockSource.EXPECT().FetchSavedItems(gomock.Any(), "tok-u1", "acct-u1", 800).
		Return(fetched, nil)
	h.mockRepo.EXPECT().AddItemIfNew(gomock.Any()).Return(true, nil)
	h.mockRepo.EXPECT().GetDigestPool("u1", gomock.Any()).Return(pool, nil)
	h.mockSource.EXPECT().FetchItemDetails(gomock.Any(), "tok-u1", []string{"i1"}).
		Return(fetched, nil)
	h.mockComposer.EXPECT().Compose("u1", fetched).Return("subj", "body")
	h.mockTransport.EXPECT().Send(gomock.Any(), "u1@example.com", "subj", "body").
		Return(errors.New("mail API down"))
	// No AddSendEvent expectation: a failed delivery must not record events

	report := disp.RunDaily(context.Background())

	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, 0, report.Sent)
}

func Test_RunDaily_ErrorDoesNotAbortBatch(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	u1 := makeUser("u1")
	u2 := makeUser("u2")
	fetched := []*logic.SourceItem{makeSourceItem("i1")}
	pool := []*dal.PoolItem{
		{ItemId: "i1", AuthorId: "author-i1", FirstSeenAt: dispNow, EverSent: false},
	}

	h.mockRepo.EXPECT().GetActiveUsers().Return([]*dal.User{u1, u2}, nil)

	// First user's source fetch blows up
	h.mockRepo.EXPECT().GetLastSnoozedAt("u1").Return(nil, nil)
	h.mockRepo.EXPECT().GetLastSentAt("u1").Return(time.Time{}, nil)
	h.mockSource.EXPECT().FetchSavedItems(gomock.Any(), "tok-u1", "acct-u1", 800).
		Return(nil, errors.New("rate limited"))

	// Second user still gets their digest
	h.mockRepo.EXPECT().GetLastSnoozedAt("u2").Return(nil, nil)
	h.mockRepo.EXPECT().GetLastSentAt("u2").Return(time.Time{}, nil)
	h.mockSource.EXPECT().FetchSavedItems(gomock.Any(), "tok-u2", "acct-u2", 800).
		Return(fetched, nil)
	h.mockRepo.EXPECT().AddItemIfNew(gomock.Any()).Return(true, nil)
	h.mockRepo.EXPECT().GetDigestPool("u2", gomock.Any()).Return(pool, nil)
	h.mockSource.EXPECT().FetchItemDetails(gomock.Any(), "tok-u2", []string{"i1"}).
		Return(fetched, nil)
	h.mockComposer.EXPECT().Compose("u2", fetched).Return("subj", "body")
	h.mockTransport.EXPECT().Send(gomock.Any(), "u2@example.com", "subj", "body").Return(nil)
	h.mockRepo.EXPECT().AddSendEvent("u2", "i1", "sent", dispNow).Return(nil)

	report := disp.RunDaily(context.Background())

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, 1, report.Sent)
}

func Test_SendMore_EmptyPool_SendsNotice(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	h.mockRepo.EXPECT().GetUser("u1").Return(usr, nil)
	h.mockRepo.EXPECT().GetDigestPool("u1", gomock.Any()).Return([]*dal.PoolItem{}, nil)
	h.mockTexts.EXPECT().Get("nothing_more_subject.txt").Return("No more posts")
	h.mockTexts.EXPECT().Get("nothing_more_body.txt").Return("All caught up.")
	h.mockTransport.EXPECT().Send(gomock.Any(), "u1@example.com", "No more posts", "All caught up.").
		Return(nil)

	err := disp.SendMore(context.Background(), "u1")

	assert.Nil(t, err)
}

func Test_SendMore_SendsSmallerDigest(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	fetched := []*logic.SourceItem{makeSourceItem("i1")}
	pool := []*dal.PoolItem{
		{ItemId: "i1", AuthorId: "author-i1", FirstSeenAt: dispNow, EverSent: false},
	}

	h.mockRepo.EXPECT().GetUser("u1").Return(usr, nil)
	h.mockRepo.EXPECT().GetDigestPool("u1", gomock.Any()).Return(pool, nil)
	h.mockSource.EXPECT().FetchItemDetails(gomock.Any(), "tok-u1", []string{"i1"}).
		Return(fetched, nil)
	h.mockComposer.EXPECT().Compose("u1", fetched).Return("subj", "body")
	h.mockTransport.EXPECT().Send(gomock.Any(), "u1@example.com", "More subj", "body").Return(nil)
	h.mockRepo.EXPECT().AddSendEvent("u1", "i1", "more", dispNow).Return(nil)

	err := disp.SendMore(context.Background(), "u1")

	assert.Nil(t, err)
}

func Test_SendMore_UnknownUser(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("nobody").Return(nil, nil)

	err := disp.SendMore(context.Background(), "nobody")

	assert.True(t, errors.Is(err, logic.ErrNotFound))
}

func Test_HandleAction_PinRecordsEvent(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("u1").Return(makeUser("u1"), nil)
	h.mockRepo.EXPECT().AddSendEvent("u1", "i1", "pin", dispNow).Return(nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "u1", Action: "pin", ItemId: "i1"})

	assert.Nil(t, err)
}

func Test_HandleAction_ItemActionRequiresItemId(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("u1").Return(makeUser("u1"), nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "u1", Action: "hide"})

	assert.True(t, errors.Is(err, logic.ErrValidation))
}

func Test_HandleAction_Snooze(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("u1").Return(makeUser("u1"), nil)
	h.mockRepo.EXPECT().SetLastSnoozedAt("u1", dispNow).Return(nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "u1", Action: "snooze"})

	assert.Nil(t, err)
}

func Test_HandleAction_Pause(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("u1").Return(makeUser("u1"), nil)
	h.mockRepo.EXPECT().SetUserActive("u1", false).Return(nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "u1", Action: "pause"})

	assert.Nil(t, err)
}

func Test_HandleAction_PausedUserRejected(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	usr := makeUser("u1")
	usr.Active = false
	h.mockRepo.EXPECT().GetUser("u1").Return(usr, nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "u1", Action: "pin", ItemId: "i1"})

	assert.True(t, errors.Is(err, logic.ErrUserPaused))
}

func Test_HandleAction_UnknownUser(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("nobody").Return(nil, nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "nobody", Action: "pin", ItemId: "i1"})

	assert.True(t, errors.Is(err, logic.ErrNotFound))
}

func Test_HandleAction_UnknownAction(t *testing.T) {

	ctrl, h, disp := setupDispatcherTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetUser("u1").Return(makeUser("u1"), nil)

	err := disp.HandleAction(context.Background(), &logic.Action{UserId: "u1", Action: "explode"})

	assert.True(t, errors.Is(err, logic.ErrValidation))
}
