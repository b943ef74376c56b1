package request

type CreateRequestReq struct {
	RequesterID     string `json:"requesterID" validate:"required"`
	CounterpartyID  string `json:"counterpartyID"`
	BookID          string `json:"bookID" validate:"required"`
	DeliveryMethod  string `json:"deliveryMethod" validate:"required,oneof=In-person Shipping"`
	Duration        int    `json:"duration" validate:"required,gt=0"`
	NegotiatedTerms string `json:"negotiatedTerms"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}
