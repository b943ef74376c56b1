// model/request.go
package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestAccepted RequestStatus = "Accepted"
	RequestRejected RequestStatus = "Rejected"
	RequestModified RequestStatus = "Modified"
)

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected, RequestModified:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryInPerson DeliveryMethod = "In-person"
	DeliveryShipping DeliveryMethod = "Shipping"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryInPerson || m == DeliveryShipping
}

type Request struct {
	ID              string         `json:"id"`
	RequesterID     string         `json:"requesterID"`
	CounterpartyID  string         `json:"counterpartyID,omitempty"`
	BookID          string         `json:"bookID"`
	Status          RequestStatus  `json:"status"`
	DeliveryMethod  DeliveryMethod `json:"deliveryMethod"`
	Duration        int            `json:"duration"`
	NegotiatedTerms string         `json:"negotiatedTerms"`
	RequestedAt     time.Time      `json:"requestedAt"`
}

// IsParticipant reports whether userID is the requester or the counterparty.
func (r *Request) IsParticipant(userID string) bool {
	return r.RequesterID == userID || r.CounterpartyID == userID
}
