package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribbonclub/ribbon_api/internal/model"
)

func intPtr(i int) *int { return &i }

func TestPlanRSVP(t *testing.T) {
	testCases := []struct {
		name       string
		current    string
		desired    string
		goingCount int
		capacity   *int
		wantStatus string
		wantFreed  bool
	}{
		{"going with free capacity", "", "going", 0, intPtr(5), "going", false},
		{"going with no capacity limit", "", "going", 1000, nil, "going", false},
		{"going at capacity queues", "", "going", 5, intPtr(5), "waitlist", false},
		{"already going keeps seat", "going", "going", 5, intPtr(5), "going", false},
		{"waitlisted retries full event", "waitlist", "going", 5, intPtr(5), "waitlist", false},
		{"waitlisted retries after a slot opened", "waitlist", "going", 4, intPtr(5), "going", false},
		{"decline with no prior row", "", "declined", 3, intPtr(5), "declined", false},
		{"decline from waitlist frees nothing", "waitlist", "declined", 5, intPtr(5), "declined", false},
		{"decline from going frees a slot", "going", "declined", 4, intPtr(5), "declined", true},
		{"decline from going on uncapped event", "going", "declined", 4, nil, "declined", false},
		{"repeat decline is idempotent", "declined", "declined", 5, intPtr(5), "declined", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanRSVP(tc.current, tc.desired, tc.goingCount, tc.capacity)
			assert.Equal(t, tc.wantStatus, plan.Status)
			assert.Equal(t, tc.wantFreed, plan.FreedSlot)
		})
	}
}

func queueOf(times ...time.Time) ([]WaitlistEntry, []uuid.UUID) {
	entries := make([]WaitlistEntry, len(times))
	ids := make([]uuid.UUID, len(times))
	for i, ts := range times {
		ids[i] = uuid.New()
		entries[i] = WaitlistEntry{UserID: ids[i], QueuedAt: ts}
	}
	return entries, ids
}

func TestWaitlistPositionFIFO(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	entries, ids := queueOf(base.Add(2*time.Minute), base, base.Add(time.Minute))

	// Positions follow request time, not slice order.
	pos := WaitlistPosition(ids[1], entries)
	require.NotNil(t, pos)
	assert.Equal(t, 1, *pos)

	pos = WaitlistPosition(ids[2], entries)
	require.NotNil(t, pos)
	assert.Equal(t, 2, *pos)

	pos = WaitlistPosition(ids[0], entries)
	require.NotNil(t, pos)
	assert.Equal(t, 3, *pos)
}

// A user who left the waitlist and rejoins carries a fresh QueuedAt and
// must rank behind everyone who queued while they were gone, even when
// their rsvp row is older.
func TestWaitlistRejoinGoesToTheBack(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	rejoiner := uuid.New()
	stayer := uuid.New()

	entries := []WaitlistEntry{
		{UserID: rejoiner, QueuedAt: base.Add(10 * time.Minute)},
		{UserID: stayer, QueuedAt: base.Add(5 * time.Minute)},
	}

	pos := WaitlistPosition(stayer, entries)
	require.NotNil(t, pos)
	assert.Equal(t, 1, *pos)

	pos = WaitlistPosition(rejoiner, entries)
	require.NotNil(t, pos)
	assert.Equal(t, 2, *pos)

	next, ok := NextInLine(entries)
	require.True(t, ok)
	assert.Equal(t, stayer, next)
}

func TestWaitlistPositionAbsentUser(t *testing.T) {
	entries, _ := queueOf(time.Now())
	assert.Nil(t, WaitlistPosition(uuid.New(), entries))
}

func TestWaitlistPositionTimestampTie(t *testing.T) {
	ts := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	entries := []WaitlistEntry{
		{UserID: b, QueuedAt: ts},
		{UserID: a, QueuedAt: ts},
	}

	pos := WaitlistPosition(a, entries)
	require.NotNil(t, pos)
	assert.Equal(t, 1, *pos)
}

func TestNextInLine(t *testing.T) {
	base := time.Now()
	entries, ids := queueOf(base.Add(time.Hour), base)

	next, ok := NextInLine(entries)
	require.True(t, ok)
	assert.Equal(t, ids[1], next)

	_, ok = NextInLine(nil)
	assert.False(t, ok)
}

// Full capacity-1 scenario: A takes the seat, B queues at position 1,
// A declines, B is promoted and holds no position.
func TestCapacityOneScenario(t *testing.T) {
	capacity := intPtr(1)
	userA := uuid.New()
	userB := uuid.New()

	planA := PlanRSVP("", model.RSVPStatusGoing, 0, capacity)
	assert.Equal(t, model.RSVPStatusGoing, planA.Status)

	planB := PlanRSVP("", model.RSVPStatusGoing, 1, capacity)
	assert.Equal(t, model.RSVPStatusWaitlist, planB.Status)

	queue := []WaitlistEntry{{UserID: userB, QueuedAt: time.Now()}}
	pos := WaitlistPosition(userB, queue)
	require.NotNil(t, pos)
	assert.Equal(t, 1, *pos)

	planDecline := PlanRSVP(model.RSVPStatusGoing, model.RSVPStatusDeclined, 0, capacity)
	assert.Equal(t, model.RSVPStatusDeclined, planDecline.Status)
	require.True(t, planDecline.FreedSlot)

	promoted, ok := NextInLine(queue)
	require.True(t, ok)
	assert.Equal(t, userB, promoted)

	// Promoted user leaves the queue; their position is gone.
	assert.Nil(t, WaitlistPosition(userB, nil))
	_ = userA
}
