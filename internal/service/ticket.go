package service

import (
	"strings"

	"github.com/google/uuid"
)

// TicketLength is the number of characters in a ticket.
const TicketLength = 8

// NewTicket returns a short uppercase code taken from a random UUID. Tickets
// are correlation tokens for humans; uniqueness is not checked.
func NewTicket() string {
	return strings.ToUpper(uuid.NewString()[:TicketLength])
}
