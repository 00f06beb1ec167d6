package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	errBroker := errors.New("broker down")
	ok := func() error { return nil }
	fail := func() error { return errBroker }

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cb := circuit_breaker.New(10, 2*time.Second, 0.3, 2, circuit_breaker.WithClock(clock))

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	assert.Equal(t, circuit_breaker.Closed, cb.State())

	// 3 of the last 10 calls failing trips the breaker.
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Call(fail), errBroker)
	}
	assert.Equal(t, circuit_breaker.Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	assert.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	assert.False(t, called)

	// After the timeout one failing probe reopens it.
	now = now.Add(3 * time.Second)
	assert.ErrorIs(t, cb.Call(fail), errBroker)
	assert.Equal(t, circuit_breaker.Open, cb.State())

	now = now.Add(3 * time.Second)
	require.NoError(t, cb.Call(ok))
	assert.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	assert.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := circuit_breaker.New(2, time.Hour, 0.5, 1)
	_ = cb.Call(func() error { return errors.New("x") })
	assert.Equal(t, circuit_breaker.Open, cb.State())

	cb.Reset()
	assert.Equal(t, circuit_breaker.Closed, cb.State())
	assert.NoError(t, cb.Call(func() error { return nil }))
}
