package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

// SMSGateway is a thin client over the provider's form API. With DryRun
// set (or no API key) it only logs, which keeps local runs and tests
// free of real traffic.
type SMSGateway struct {
	APIKey string
	Sender string
	DryRun bool
}

type SendSMSResponse struct {
	Code int `json:"code"`
	Data struct {
		MessageID string `json:"messageId"`
	} `json:"data"`
}

func NewSMSGateway(apiKey, sender string, dryRun bool) *SMSGateway {
	return &SMSGateway{APIKey: apiKey, Sender: sender, DryRun: dryRun}
}

func (c *SMSGateway) Send(to, text string) (*SendSMSResponse, error) {
	if c.DryRun || c.APIKey == "" {
		log.Printf("[sms][dry-run] to=%s sender=%q text=%q", to, c.Sender, text)
		return &SendSMSResponse{Code: 0}, nil
	}

	const apiURL = "https://api.smsgateway.com.br/service/message/send"

	form := url.Values{
		"apiKey":    {c.APIKey},
		"recipient": {to},
		"text":      {text},
	}
	if c.Sender != "" {
		form.Set("from", c.Sender)
	}

	resp, err := http.PostForm(apiURL, form)
	if err != nil {
		return nil, fmt.Errorf("send SMS request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result SendSMSResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse SMS response: %w", err)
	}
	if result.Code != 0 {
		return nil, fmt.Errorf("sms gateway returned error code: %d", result.Code)
	}
	return &result, nil
}
