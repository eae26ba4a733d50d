package dto

type TokenResponse struct {
	Token string `json:"token"`
}

type PaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// InsertResult and DeleteResult mirror the shapes the frontend already
// consumes from the previous store driver.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type FinalizeResponse struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
