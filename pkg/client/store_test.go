package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchAndSubscribe(t *testing.T) {
	t.Parallel()

	store := NewStore()
	updates := store.Subscribe()

	store.Dispatch(loginSucceeded{token: "jwt"})

	select {
	case snapshot := <-updates:
		assert.True(t, snapshot.Auth.IsAuthenticated)
	case <-time.After(time.Second):
		t.Fatal("no state update received")
	}

	assert.Equal(t, "jwt", store.GetState().Auth.Token)
}

func TestSetAlertExpires(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetAlertTTL(20 * time.Millisecond)

	id := store.SetAlert("Invalid Credentials", AlertDanger)
	require.NotEmpty(t, id)

	state := store.GetState()
	require.Len(t, state.Alerts, 1)
	assert.Equal(t, "Invalid Credentials", state.Alerts[0].Message)

	assert.Eventually(t, func() bool {
		return len(store.GetState().Alerts) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSetAlertConcurrent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetAlertTTL(time.Minute)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 25; j++ {
				store.SetAlert("msg", AlertDanger)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Len(t, store.GetState().Alerts, 200)
}
