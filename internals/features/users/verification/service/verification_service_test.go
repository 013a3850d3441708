package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/exceptions"
)

type memoryStore struct {
	mu       sync.Mutex
	codes    map[string]string
	verified map[string]bool
	attempts map[string]int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{codes: map[string]string{}, verified: map[string]bool{}, attempts: map[string]int64{}}
}

func (m *memoryStore) SaveCode(_ context.Context, phone, code string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[phone] = code
	return nil
}

func (m *memoryStore) GetCode(_ context.Context, phone string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[phone], nil
}

func (m *memoryStore) DeleteCode(_ context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.codes, phone)
	return nil
}

func (m *memoryStore) MarkVerified(_ context.Context, phone string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verified[phone] = true
	return nil
}

func (m *memoryStore) IsVerified(_ context.Context, phone string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verified[phone], nil
}

func (m *memoryStore) ClearVerified(_ context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.verified, phone)
	return nil
}

func (m *memoryStore) IncrAttempts(_ context.Context, phone string, _ time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[phone]++
	return m.attempts[phone], nil
}

func (m *memoryStore) ClearAttempts(_ context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, phone)
	return nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+text)
	return nil
}

func TestSendAndVerify(t *testing.T) {
	st, sender := newMemoryStore(), &fakeSender{}
	svc := NewVerificationService(st, sender)
	ctx := context.Background()

	require.NoError(t, svc.SendCode(ctx, "01012345678"))
	require.Len(t, sender.sent, 1)
	code := st.codes["01012345678"]
	assert.Len(t, code, 6)
	assert.Contains(t, sender.sent[0], code)

	err := svc.VerifyCode(ctx, "01012345678", "000000x")
	assert.True(t, exceptions.Is(err, exceptions.InvalidVerificationCode))

	require.NoError(t, svc.VerifyCode(ctx, "01012345678", code))
	assert.Empty(t, st.codes)

	// a code cannot be reused
	err = svc.VerifyCode(ctx, "01012345678", code)
	assert.True(t, exceptions.Is(err, exceptions.InvalidVerificationCode))

	require.NoError(t, svc.ConsumeVerified(ctx, "01012345678"))
	assert.True(t, exceptions.Is(svc.ConsumeVerified(ctx, "01012345678"), exceptions.PhoneNotVerified))
}

func TestSendFailureDropsCode(t *testing.T) {
	st := newMemoryStore()
	svc := NewVerificationService(st, &fakeSender{err: errors.New("provider down")})

	err := svc.SendCode(context.Background(), "01012345678")
	assert.True(t, exceptions.Is(err, exceptions.ExternalServiceFailure))
	assert.Empty(t, st.codes)
}

func TestCodeDiesAfterRepeatedFailures(t *testing.T) {
	st := newMemoryStore()
	svc := NewVerificationService(st, &fakeSender{})
	ctx := context.Background()
	const phone = "01012345678"

	require.NoError(t, svc.SendCode(ctx, phone))
	code := st.codes[phone]
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	for i := 0; i < MaxAttempts; i++ {
		err := svc.VerifyCode(ctx, phone, wrong)
		assert.True(t, exceptions.Is(err, exceptions.InvalidVerificationCode))
	}
	assert.Empty(t, st.codes)

	err := svc.VerifyCode(ctx, phone, code)
	assert.True(t, exceptions.Is(err, exceptions.InvalidVerificationCode))
	assert.True(t, exceptions.Is(svc.ConsumeVerified(ctx, phone), exceptions.PhoneNotVerified))
}

func TestSuccessfulVerifyResetsAttempts(t *testing.T) {
	st := newMemoryStore()
	svc := NewVerificationService(st, &fakeSender{})
	ctx := context.Background()
	const phone = "01012345678"

	require.NoError(t, svc.SendCode(ctx, phone))
	code := st.codes[phone]
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	assert.Error(t, svc.VerifyCode(ctx, phone, wrong))
	assert.Equal(t, int64(1), st.attempts[phone])

	require.NoError(t, svc.VerifyCode(ctx, phone, code))
	assert.Zero(t, st.attempts[phone])
}
