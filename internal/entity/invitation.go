package entity

import (
	"fmt"
	"time"
)

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationCancelled InvitationStatus = "cancelled"
	InvitationExpired   InvitationStatus = "expired"
)

// Invitation offers a user a place in an organization. The recipient acts on
// it by Token, the issuer by ID.
type Invitation struct {
	ID         string           `json:"id"`
	Token      string           `json:"token"`
	EntitySlug string           `json:"entitySlug"`
	EntityName string           `json:"entityName,omitempty"`
	Email      string           `json:"email"`
	Role       Role             `json:"role"`
	Status     InvitationStatus `json:"status"`
	InvitedBy  string           `json:"invitedBy,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	ExpiresAt  time.Time        `json:"expiresAt"`
}

func (i Invitation) IsPending() bool {
	return i.Status == InvitationPending
}

// InviteMemberRequest is forwarded unchanged to the client when an admin invites
// someone.
type InviteMemberRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// PendingCount counts invitations still awaiting a response.
func PendingCount(invitations []Invitation) int {
	n := 0
	for _, inv := range invitations {
		if inv.IsPending() {
			n++
		}
	}
	return n
}

// PendingSummary renders the invitations page header for n pending invitations.
func PendingSummary(n int) string {
	switch {
	case n <= 0:
		return "No pending invitations"
	case n == 1:
		return "You have 1 pending invitation"
	default:
		return fmt.Sprintf("You have %d pending invitations", n)
	}
}
