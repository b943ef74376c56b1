// model/transaction.go
package model

import "time"

type TransactionStatus string

const (
	TxnPending    TransactionStatus = "Pending"
	TxnInProgress TransactionStatus = "In Progress"
	TxnShipping   TransactionStatus = "Shipping"
	TxnDelivered  TransactionStatus = "Delivered"
	TxnCancelled  TransactionStatus = "Cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TxnPending, TxnInProgress, TxnShipping, TxnDelivered, TxnCancelled:
		return true
	}
	return false
}

type Transaction struct {
	ID             string            `json:"id"`
	RequestID      string            `json:"requestID"`
	OwnerID        string            `json:"ownerID"`
	BookID         string            `json:"bookID"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	BookReturnedAt *time.Time        `json:"bookReturnedDate,omitempty"`
}
