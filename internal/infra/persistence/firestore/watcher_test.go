package firestore

import (
	"context"
	"testing"
	"time"

	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySend_DeliversToReceiver(t *testing.T) {
	out := make(chan repository.Snapshot[*entity.Country], 1)

	ok := trySend(context.Background(), out, repository.Snapshot[*entity.Country]{
		Data: []*entity.Country{{ID: "c1", Name: "대한민국"}},
	})

	require.True(t, ok)
	snap := <-out
	require.NoError(t, snap.Err)
	assert.Len(t, snap.Data, 1)
}

func TestTrySend_GoneSubscriberDoesNotBlock(t *testing.T) {
	// Buffer already holds an undelivered snapshot and nobody is receiving,
	// mirroring a client disconnect racing an error snapshot.
	out := make(chan repository.Snapshot[*entity.Country], 1)
	out <- repository.Snapshot[*entity.Country]{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan bool, 1)
	go func() {
		done <- trySend(ctx, out, repository.Snapshot[*entity.Country]{Err: errors.New("decode failed")})
	}()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send to a gone subscriber blocked")
	}
}
