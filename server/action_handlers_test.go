package server

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"net/url"
	"skimbox/logic"
	"skimbox/shared"
	"skimbox/test/mocks"
	"testing"
)

type actionHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockDispatcher *mocks.MockIDispatcher
	mockMetrics    *mocks.MockIMetrics
	signer         logic.ISigner
	handler        func(http.ResponseWriter, *http.Request)
}

func setupActionTest(t *testing.T) (*gomock.Controller, *actionHarness) {

	ctrl := gomock.NewController(t)

	cfg := &shared.Config{Host: "skimbox.example"}
	cfg.Secrets.HmacKey = "test-hmac-key"

	h := &actionHarness{
		cfg:            cfg,
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockDispatcher: mocks.NewMockIDispatcher(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		signer:         logic.NewSigner(cfg),
	}
	// Variadic format args need their own matcher or the stub only covers bare calls.
	h.mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	h.mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	hg := NewActionHandlerGroup(cfg, h.mockLogger, h.signer, h.mockDispatcher, h.mockMetrics)
	h.handler = hg.GroupDefs()[0].handler

	return ctrl, h
}

func (h *actionHarness) makeLink(userId, action, itemId string) string {
	payload := h.signer.BuildPayload(userId, h.signer.NewNonce(), action, itemId)
	return "/a?" + payload + "&sig=" + url.QueryEscape(h.signer.Sign(payload))
}

func (h *actionHarness) get(link string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", link, nil)
	rec := httptest.NewRecorder()
	h.handler(rec, req)
	return rec
}

func Test_Action_ValidLinkApplied(t *testing.T) {

	ctrl, h := setupActionTest(t)
	defer ctrl.Finish()

	h.mockDispatcher.EXPECT().
		HandleAction(gomock.Any(), gomock.Eq(&logic.Action{UserId: "u1", Action: "pin", ItemId: "i1"})).
		Return(nil)

	rec := h.get(h.makeLink("u1", "pin", "i1"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func Test_Action_TamperedParamRejectedBeforeDispatch(t *testing.T) {

	ctrl, h := setupActionTest(t)
	defer ctrl.Finish()

	// Signed for hide, then act flipped to pin. No HandleAction expectation:
	// nothing may run before the signature verifies.
	h.mockMetrics.EXPECT().SignatureRejected()

	payload := h.signer.BuildPayload("u1", "nonce123nonce123", "hide", "i1")
	sig := h.signer.Sign(payload)
	tampered := "/a?u=u1&t=nonce123nonce123&act=pin&id=i1&sig=" + url.QueryEscape(sig)

	rec := h.get(tampered)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_Action_MissingParamAndBadSigLookAlike(t *testing.T) {

	ctrl, h := setupActionTest(t)
	defer ctrl.Finish()

	h.mockMetrics.EXPECT().SignatureRejected().Times(2)

	// Missing sig entirely
	payload := h.signer.BuildPayload("u1", "nonce123nonce123", "pin", "i1")
	recMissing := h.get("/a?" + payload)

	// Wrong sig
	recBadSig := h.get("/a?" + payload + "&sig=" + url.QueryEscape(h.signer.Sign("other")))

	assert.Equal(t, http.StatusUnauthorized, recMissing.Code)
	assert.Equal(t, http.StatusUnauthorized, recBadSig.Code)
	assert.Equal(t, recMissing.Body.String(), recBadSig.Body.String())
}

func Test_Action_UnknownActionIs400(t *testing.T) {

	ctrl, h := setupActionTest(t)
	defer ctrl.Finish()

	// Properly signed, but not an action we know
	rec := h.get(h.makeLink("u1", "explode", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Action_ErrorMapping(t *testing.T) {

	ctrl, h := setupActionTest(t)
	defer ctrl.Finish()

	cases := []struct {
		err  error
		code int
	}{
		{logic.ErrNotFound, http.StatusNotFound},
		{logic.ErrUserPaused, http.StatusForbidden},
		{logic.ErrValidation, http.StatusBadRequest},
		{errors.New("db exploded"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		h.mockDispatcher.EXPECT().HandleAction(gomock.Any(), gomock.Any()).Return(c.err)
		rec := h.get(h.makeLink("u1", "pin", "i1"))
		assert.Equal(t, c.code, rec.Code)
	}
}
