package matching

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ribbonclub/ribbon_api/internal/model"
)

// RSVPPlan is the outcome of applying a desired status against the
// event's capacity. FreedSlot marks that a going seat opened and the
// waitlist should be checked for promotion.
type RSVPPlan struct {
	Status    string
	FreedSlot bool
}

// PlanRSVP decides the stored status for a (user, event) transition.
//
// current is the user's existing status, empty when no row exists.
// goingCount is the number of going rows excluding the acting user.
// capacity is nil for uncapped events. desired is going or declined;
// waitlist is never requested directly.
func PlanRSVP(current, desired string, goingCount int, capacity *int) RSVPPlan {
	if desired == model.RSVPStatusDeclined {
		return RSVPPlan{
			Status:    model.RSVPStatusDeclined,
			FreedSlot: current == model.RSVPStatusGoing && capacity != nil,
		}
	}

	// desired going: keep an existing seat, otherwise take one if any
	// remain, else queue.
	if current == model.RSVPStatusGoing {
		return RSVPPlan{Status: model.RSVPStatusGoing}
	}
	if capacity == nil || goingCount < *capacity {
		return RSVPPlan{Status: model.RSVPStatusGoing}
	}
	return RSVPPlan{Status: model.RSVPStatusWaitlist}
}

// WaitlistEntry is one queued rsvp row. QueuedAt is the moment the row
// last entered the waitlist, not the row's creation time: a user who
// leaves and rejoins queues behind everyone already waiting.
type WaitlistEntry struct {
	UserID   uuid.UUID
	QueuedAt time.Time
}

func sortQueue(queue []WaitlistEntry) []WaitlistEntry {
	sorted := make([]WaitlistEntry, len(queue))
	copy(sorted, queue)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].QueuedAt.Equal(sorted[j].QueuedAt) {
			return sorted[i].QueuedAt.Before(sorted[j].QueuedAt)
		}
		return bytes.Compare(sorted[i].UserID[:], sorted[j].UserID[:]) < 0
	})
	return sorted
}

// WaitlistPosition returns the user's 1-based FIFO rank in the queue,
// ordered by queue-join time with id tie-break. Positions are computed
// from the queue every time, never stored, so promotions just shift
// everyone down without renumbering.
func WaitlistPosition(userID uuid.UUID, queue []WaitlistEntry) *int {
	for i, entry := range sortQueue(queue) {
		if entry.UserID == userID {
			pos := i + 1
			return &pos
		}
	}
	return nil
}

// NextInLine returns the earliest-queued user, if any.
func NextInLine(queue []WaitlistEntry) (uuid.UUID, bool) {
	if len(queue) == 0 {
		return uuid.Nil, false
	}
	return sortQueue(queue)[0].UserID, true
}
