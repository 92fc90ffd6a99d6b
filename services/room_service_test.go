package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ops-backend/models"
	"hotel-ops-backend/store"
)

func newTestCollections() *store.Collections {
	return store.NewCollections(store.NewMemoryStore())
}

func declineConfirm(string) bool { return false }

func TestRoomServiceAdd(t *testing.T) {
	svc := NewRoomService(newTestCollections())

	room, err := svc.Add("101", models.RoomTypeDeluxe, models.RoomStatusDirty, "150.50")
	require.NoError(t, err)

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, models.RoomTypeDeluxe, room.Type)
	assert.Equal(t, models.RoomStatusDirty, room.Status)
	assert.Equal(t, 150.50, room.Price)

	rooms := svc.List()
	require.Len(t, rooms, 1)
	assert.Equal(t, room, rooms[0])
}

func TestRoomServiceAddBadPriceDefaultsToZero(t *testing.T) {
	svc := NewRoomService(newTestCollections())

	// ParseFloat parses "NaN" and "Inf" without error; they must default
	// to 0 like any other junk or the collection stops marshaling.
	for _, price := range []string{"abc", "", "-10", "NaN", "nan", "Inf", "+Inf", "-Inf"} {
		room, err := svc.Add("101", models.RoomTypeStandard, models.RoomStatusClean, price)
		require.NoError(t, err)
		assert.Zero(t, room.Price, "price %q should default to 0", price)

		_, err = json.Marshal(room)
		assert.NoError(t, err, "room with price %q must serialize", price)
	}
}

func TestRoomServiceAddUnknownTypeAndStatusFallBack(t *testing.T) {
	svc := NewRoomService(newTestCollections())

	room, err := svc.Add("101", "Igloo", "Haunted", "80")
	require.NoError(t, err)

	assert.Equal(t, models.RoomTypeStandard, room.Type)
	assert.Equal(t, models.RoomStatusClean, room.Status)
}

func TestRoomServiceAddRequiresNumber(t *testing.T) {
	svc := NewRoomService(newTestCollections())

	_, err := svc.Add("   ", models.RoomTypeStandard, models.RoomStatusClean, "80")
	assert.ErrorIs(t, err, ErrRoomNumberRequired)
	assert.Empty(t, svc.List())
}

func TestRoomServiceAddAssignsUniqueIDs(t *testing.T) {
	svc := NewRoomService(newTestCollections())

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		room, err := svc.Add("101", models.RoomTypeStandard, models.RoomStatusClean, "80")
		require.NoError(t, err)
		assert.False(t, seen[room.ID], "duplicate id %s", room.ID)
		seen[room.ID] = true
	}
}

func TestRoomServiceDelete(t *testing.T) {
	svc := NewRoomService(newTestCollections())
	room, err := svc.Add("101", models.RoomTypeStandard, models.RoomStatusClean, "80")
	require.NoError(t, err)

	removed, err := svc.Delete(room.ID, AlwaysConfirm)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, svc.List())
}

func TestRoomServiceDeleteDeclinedLeavesStateUntouched(t *testing.T) {
	svc := NewRoomService(newTestCollections())
	room, err := svc.Add("101", models.RoomTypeStandard, models.RoomStatusClean, "80")
	require.NoError(t, err)

	_, err = svc.Delete(room.ID, declineConfirm)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, svc.List(), 1)

	_, err = svc.Delete(room.ID, nil)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, svc.List(), 1)
}

func TestRoomServiceConcurrentAddsLoseNothing(t *testing.T) {
	svc := NewRoomService(newTestCollections())

	const adds = 100
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := svc.Add(fmt.Sprintf("%d", i), models.RoomTypeStandard, models.RoomStatusClean, "80")
			assert.NoError(t, err)
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Len(t, svc.List(), adds)
}

func TestRoomServiceDeleteUnknownIDIsNoOp(t *testing.T) {
	svc := NewRoomService(newTestCollections())
	_, err := svc.Add("101", models.RoomTypeStandard, models.RoomStatusClean, "80")
	require.NoError(t, err)

	removed, err := svc.Delete("missing", AlwaysConfirm)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, svc.List(), 1)
}
