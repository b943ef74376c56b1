package transaction

import "time"

type CreateTransactionReq struct {
	RequestID string `json:"requestID" validate:"required"`
	OwnerID   string `json:"ownerID" validate:"required"`
	BookID    string `json:"bookID" validate:"required"`
	Status    string `json:"status"`
}

// UpdateTransactionReq is a partial update; omitted fields keep their value.
type UpdateTransactionReq struct {
	Status           *string    `json:"status"`
	BookReturnedDate *time.Time `json:"bookReturnedDate"`
}
