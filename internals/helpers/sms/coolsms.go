package helper

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"

	"learnsmate_backend/internals/configs"
	helpers "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/logger"
)

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, to, text string) error
}

var ErrSmsNotConfigured = errors.New("coolsms credentials are not configured")

// CoolSmsClient calls the CoolSMS v4 send API behind a circuit breaker.
type CoolSmsClient struct {
	cfg  configs.CoolSmsConfig
	http *http.Client
	cb   *gobreaker.CircuitBreaker
	now  func() time.Time
}

func NewCoolSmsClient(cfg configs.CoolSmsConfig, httpClient *http.Client) *CoolSmsClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	st := gobreaker.Settings{
		Name:        "coolsms",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	}
	return &CoolSmsClient{
		cfg:  cfg,
		http: httpClient,
		cb:   gobreaker.NewCircuitBreaker(st),
		now:  time.Now,
	}
}

type sendBody struct {
	Message sendMessage `json:"message"`
}

type sendMessage struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

func (c *CoolSmsClient) Send(ctx context.Context, to, text string) error {
	if c.cfg.APIKey == "" || c.cfg.APISecret == "" {
		return ErrSmsNotConfigured
	}
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.send(ctx, to, text)
	})
	return err
}

func (c *CoolSmsClient) send(ctx context.Context, to, text string) error {
	payload, err := sonic.Marshal(sendBody{Message: sendMessage{
		To:   helpers.NormalizePhone(to),
		From: helpers.NormalizePhone(c.cfg.Sender),
		Text: text,
	}})
	if err != nil {
		return errors.Wrap(err, "encode sms body")
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/messages/v4/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authorization())

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "send sms")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Errorf("coolsms responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// authorization builds the HMAC-SHA256 header: signature = hmac(date+salt, secret).
func (c *CoolSmsClient) authorization() string {
	date := c.now().UTC().Format(time.RFC3339)
	salt := randomSalt()
	mac := hmac.New(sha256.New, []byte(c.cfg.APISecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		c.cfg.APIKey, date, salt, signature)
}

func randomSalt() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
