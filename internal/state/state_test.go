package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreStartsBooting(t *testing.T) {
	assert.Equal(t, BOOTING, NewStore().Snapshot().Phase)
}

func TestPublishCopiesSlices(t *testing.T) {
	store := NewStore()
	errs := []string{"Failed to draw circles: invalid radius: -1"}
	store.Publish(Status{Phase: RUNNING, Frame: 3, Errors: errs})
	errs[0] = "changed"

	snap := store.Snapshot()
	assert.Equal(t, uint64(3), snap.Frame)
	assert.Equal(t, "Failed to draw circles: invalid radius: -1", snap.Errors[0])

	snap.Errors[0] = "changed again"
	assert.Equal(t, "Failed to draw circles: invalid radius: -1", store.Snapshot().Errors[0])
}

func TestFail(t *testing.T) {
	store := NewStore()
	store.SetPhase(RUNNING)
	store.Fail(errors.New("present frame 4: broken pipe"))

	snap := store.Snapshot()
	assert.Equal(t, ERROR, snap.Phase)
	assert.Equal(t, "present frame 4: broken pipe", snap.Err)
	assert.Equal(t, "error", snap.Phase.String())
}
