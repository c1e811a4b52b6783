package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library-manager/pkg/circuitbreaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	failing := func() error { return errors.New("publish error") }

	cb := circuitbreaker.New(10, 100*time.Millisecond, 0.30, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// enough failures to exceed the percentile and trip the breaker
	for i := 0; i < 10; i++ {
		_ = cb.Call(failing)
	}
	require.ErrorIs(t, cb.Call(ok), circuitbreaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open and recovers
	time.Sleep(150 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.NoError(t, cb.Call(ok))

	// a failure in half-open reopens immediately
	for i := 0; i < 10; i++ {
		_ = cb.Call(failing)
	}
	require.ErrorIs(t, cb.Call(ok), circuitbreaker.ErrOpenCB)
	time.Sleep(150 * time.Millisecond)
	require.Error(t, cb.Call(failing))
	require.ErrorIs(t, cb.Call(ok), circuitbreaker.ErrOpenCB)
}
