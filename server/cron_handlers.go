package server

import (
	"net/http"
	"skimbox/logic"
	"skimbox/shared"
)

type cronHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	dispatcher logic.IDispatcher
}

func NewCronHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	dispatcher logic.IDispatcher,
) IHandlerGroup {
	res := cronHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
	}
	return &res
}

func (hg *cronHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *cronHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/cron/send", func(w http.ResponseWriter, r *http.Request) { hg.postCronSend(w, r) }},
	}
}

func (hg *cronHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *cronHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// postCronSend kicks off the daily run and returns its report. The scheduler
// may call this more than once a day; users already served are skipped, so
// retries are safe.
func (hg *cronHandlerGroup) postCronSend(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/cron/send: Request received")
	report := hg.dispatcher.RunDaily(r.Context())
	writeJsonResponse(hg.logger, w, report)
}
