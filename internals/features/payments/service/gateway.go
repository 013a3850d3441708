package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"

	"learnsmate_backend/internals/configs"
	"learnsmate_backend/internals/logger"
)

// TokenRequest describes one Snap checkout.
type TokenRequest struct {
	OrderID       string
	Amount        int64
	ItemID        string
	ItemName      string
	CustomerName  string
	CustomerEmail string
}

// Gateway issues checkout tokens for a payment provider.
type Gateway interface {
	CreateToken(ctx context.Context, req TokenRequest) (string, error)
}

var ErrGatewayNotConfigured = errors.New("midtrans server key is not configured")

// MidtransGateway wraps the Snap client behind a circuit breaker.
type MidtransGateway struct {
	serverKey string
	client    snap.Client
	cb        *gobreaker.CircuitBreaker
}

func NewMidtransGateway(cfg configs.MidtransConfig) *MidtransGateway {
	g := &MidtransGateway{serverKey: cfg.ServerKey}
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}
	g.client.New(cfg.ServerKey, env)
	g.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "midtrans",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	})
	return g
}

func (g *MidtransGateway) CreateToken(ctx context.Context, req TokenRequest) (string, error) {
	if g.serverKey == "" {
		return "", ErrGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := g.cb.Execute(func() (interface{}, error) {
		resp, mErr := g.client.CreateTransaction(&snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  req.OrderID,
				GrossAmt: req.Amount,
			},
			CustomerDetail: &midtrans.CustomerDetails{
				FName: req.CustomerName,
				Email: req.CustomerEmail,
			},
			Items: &[]midtrans.ItemDetails{{
				ID:    req.ItemID,
				Name:  truncate(req.ItemName, 50),
				Price: req.Amount,
				Qty:   1,
			}},
		})
		if mErr != nil {
			return nil, mErr
		}
		return resp.Token, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "midtrans create transaction")
	}
	return out.(string), nil
}

// VerifySignature checks SHA512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	want := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(signature))) == 1
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
