package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a message addressed to one user.
type Event struct {
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

const dateLayout = "2006-01-02 15:04"

func BookingConfirmed(userID, machineID uuid.UUID, start time.Time, now time.Time) Event {
	return Event{
		UserID:    userID,
		Title:     "Booking confirmed",
		Message:   fmt.Sprintf("Your washing machine %s is booked for %s.", machineID, start.Format(dateLayout)),
		CreatedAt: now,
	}
}

func MachineBooked(ownerID, machineID uuid.UUID, start time.Time, now time.Time) Event {
	return Event{
		UserID:    ownerID,
		Title:     "New booking",
		Message:   fmt.Sprintf("Washing machine %s was booked for %s.", machineID, start.Format(dateLayout)),
		CreatedAt: now,
	}
}

func BookingCancelled(userID, machineID uuid.UUID, start time.Time, now time.Time) Event {
	return Event{
		UserID:    userID,
		Title:     "Booking cancelled",
		Message:   fmt.Sprintf("Your booking of washing machine %s for %s was cancelled.", machineID, start.Format(dateLayout)),
		CreatedAt: now,
	}
}

func BookingCancelledByOwner(userID, machineID uuid.UUID, start time.Time, now time.Time) Event {
	return Event{
		UserID:    userID,
		Title:     "Booking cancelled by the laundromat",
		Message:   fmt.Sprintf("The laundromat cancelled your booking of washing machine %s for %s. You have been refunded.", machineID, start.Format(dateLayout)),
		CreatedAt: now,
	}
}
