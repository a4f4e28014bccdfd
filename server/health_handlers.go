package server

import (
	"net/http"
	"skimbox/shared"
)

type healthHandlerGroup struct {
	logger shared.ILogger
}

func NewHealthHandlerGroup(logger shared.ILogger) IHandlerGroup {
	return &healthHandlerGroup{logger: logger}
}

func (hg *healthHandlerGroup) Prefix() string {
	return "/healthz"
}

func (hg *healthHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "", func(w http.ResponseWriter, r *http.Request) { hg.getHealth(w, r) }},
	}
}

func (hg *healthHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *healthHandlerGroup) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(hg.logger, w, map[string]string{"status": "ok"})
}
