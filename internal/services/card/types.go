package card

import "vendora/internal/gateway"

// Workflow identifiers and step names recorded in the durable step log.
const (
	WorkflowCreate = "card_create"
	WorkflowUpdate = "card_update"
	WorkflowDelete = "card_delete"

	StepCustomerResolved = "customer_resolved"
	StepMethodAttached   = "method_attached"
	StepDefaultSet       = "default_set"
	StepMethodRetrieved  = "method_retrieved"
	StepCardSaved        = "card_saved"
	StepRemoteModified   = "remote_modified"
	StepLocalUpdated     = "local_updated"
	StepRowLocated       = "row_located"
	StepMethodDetached   = "method_detached"
	StepLocalDeleted     = "local_deleted"
	StepCustomerDeleted  = "customer_deleted"
)

// CreateCardInput carries a card-token creation request. PaymentMethodID is
// the processor-side reference produced by the client SDK; the PAN itself
// never reaches this service.
type CreateCardInput struct {
	Email           string `json:"email"`
	SaveCard        bool   `json:"save_card"`
	PaymentMethodID string `json:"payment_method_id"`
}

type CreateCardResult struct {
	CustomerID string                `json:"customer_id"`
	Email      string                `json:"email"`
	Card       *gateway.MethodDetail `json:"card_data"`
	Saved      bool                  `json:"saved"`
}

// UpdateCardInput mutates remote payment method attributes. Last4 is only
// used to locate the matching local row, never mutated. Empty fields are
// left untouched on both sides.
type UpdateCardInput struct {
	PaymentMethodID string `json:"card_id"`
	Last4           string `json:"card_number"`
	NameOnCard      string `json:"name_on_card"`
	ExpMonth        string `json:"exp_month"`
	ExpYear         string `json:"exp_year"`
	AddressCity     string `json:"address_city"`
	AddressCountry  string `json:"address_country"`
	AddressState    string `json:"address_state"`
	AddressZip      string `json:"address_zip"`
}

type UpdateCardResult struct {
	Card *gateway.MethodDetail `json:"card"`
	// LocalUpdated reports whether a matching stored card was refreshed.
	// The local store is a best-effort cache, so a miss is still success.
	LocalUpdated bool `json:"local_updated"`
}
