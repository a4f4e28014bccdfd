package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"skimbox/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_transport.go -package mocks skimbox/logic ITransport

// ITransport delivers a composed digest. Failures surface as errors; there is
// no retrying at this layer.
type ITransport interface {
	Send(ctx context.Context, to, subject, body string) error
}

type mailer struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
}

func NewMailer(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) ITransport {
	return &mailer{cfg, logger, metrics}
}

type mailReq struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (m *mailer) Send(ctx context.Context, to, subject, body string) error {

	obs := m.metrics.StartMailSend()
	defer obs.Finish()

	m.logger.Infof("Sending mail to %s: %s", to, subject)

	bodyJson, _ := json.Marshal(&mailReq{
		From:    m.cfg.MailApi.FromAddr,
		To:      to,
		Subject: subject,
		Text:    body,
	})

	req, err := http.NewRequestWithContext(ctx, "POST", m.cfg.MailApi.BaseUrl+"/emails", bytes.NewBuffer(bodyJson))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.Secrets.MailApiKey)
	req.Header.Set("Content-Type", "application/json")

	client := http.Client{}
	client.Timeout = time.Second * time.Duration(m.cfg.MailApi.TimeoutSec)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		msg := fmt.Sprintf("got status %s: response: %s", resp.Status, respBody)
		m.logger.Warnf("Mail POST failed: %s", msg)
		return errors.New(msg)
	}

	return nil
}
