package server

import (
	"errors"
	"net/http"
	"skimbox/dal"
	"skimbox/logic"
	"skimbox/shared"
)

type actionHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	signer     logic.ISigner
	dispatcher logic.IDispatcher
	metrics    logic.IMetrics
}

func NewActionHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	signer logic.ISigner,
	dispatcher logic.IDispatcher,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := actionHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		signer:     signer,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
	return &res
}

func (hg *actionHandlerGroup) Prefix() string {
	return "/a"
}

func (hg *actionHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "", func(w http.ResponseWriter, r *http.Request) { hg.getAction(w, r) }},
	}
}

func (hg *actionHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

// getAction verifies and applies a one-tap link. A missing parameter and a
// wrong signature get the exact same response, so a probing caller learns
// nothing about which check failed.
func (hg *actionHandlerGroup) getAction(w http.ResponseWriter, r *http.Request) {

	q := r.URL.Query()
	userId := q.Get("u")
	nonce := q.Get("t")
	act := q.Get("act")
	itemId := q.Get("id")
	sig := q.Get("sig")

	reject := func() {
		hg.metrics.SignatureRejected()
		hg.logger.Warnf("Rejected action link: %s", r.URL.RequestURI())
		writeErrorResponse(w, badActionLinkStr, http.StatusUnauthorized)
	}

	if userId == "" || nonce == "" || act == "" || sig == "" {
		reject()
		return
	}
	payload := hg.signer.BuildPayload(userId, nonce, act, itemId)
	if !hg.signer.Verify(payload, sig) {
		reject()
		return
	}

	switch act {
	case dal.ActionPin, dal.ActionHide, dal.ActionOpen, dal.ActionSnooze, dal.ActionPause, dal.ActionMore:
	default:
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	err := hg.dispatcher.HandleAction(r.Context(), &logic.Action{UserId: userId, Action: act, ItemId: itemId})
	if err != nil {
		hg.logger.Warnf("Action %s failed for user %s: %v", act, userId, err)
		if errors.Is(err, logic.ErrValidation) {
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		} else if errors.Is(err, logic.ErrNotFound) {
			writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		} else if errors.Is(err, logic.ErrUserPaused) {
			writeErrorResponse(w, forbiddenStr, http.StatusForbidden)
		} else {
			writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		}
		return
	}

	hg.logger.Infof("Handled action %s for user %s", act, userId)
	w.WriteHeader(http.StatusNoContent)
}
