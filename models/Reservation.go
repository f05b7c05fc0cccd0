package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation statuses. A reservation is created as pending and moves to
// approved or disapproved exactly once; there is no way back to pending and
// no approved<->disapproved transition. Deletion is allowed from any status.
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusDisapproved = "disapproved"
)

type Reservation struct {
	gorm.Model
	PublicID          string `json:"id" gorm:"size:36;uniqueIndex;not null"`
	FullName          string `json:"fullName" gorm:"size:120;not null"`
	Email             string `json:"email" gorm:"size:254;not null;index"`
	PhoneNumber       string `json:"phoneNumber" gorm:"size:32;not null"`
	IDRoom            string `json:"idRoom" gorm:"size:32;not null;index"`
	CheckIn           Date   `json:"checkIn" gorm:"not null;index"`
	CheckOut          Date   `json:"checkOut" gorm:"not null;index"`
	GuestNumber       int    `json:"guestNumber" gorm:"not null"`
	AdditionalMessage string `json:"additionalMessage,omitempty" gorm:"size:1000"`
	Status            string `json:"status" gorm:"size:16;index;default:'pending'"`
	// RejectionMessage is required by the admin disapprove action but stays
	// optional here so records disapproved without a reason remain readable.
	RejectionMessage string `json:"rejectionMessage,omitempty" gorm:"size:500"`
}

// BeforeCreate assigns the opaque id that identifies the reservation on the
// public API.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.PublicID == "" {
		r.PublicID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether an admin may move a reservation from one
// status to another. Only pending records can be decided.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusDisapproved
}
