package session

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ray-remotestate/storefront/models"
)

// maxNoteLength bounds the free-text delivery note.
const maxNoteLength = 100

// CheckoutForm is the delivery/payment form a customer fills in before
// placing an order.
type CheckoutForm struct {
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	Name           string                `json:"name"`
	Phone          string                `json:"phone"`
	Street         string                `json:"street"`
	City           string                `json:"city"`
	Reference      string                `json:"reference"`
	Note           string                `json:"note"`
	PaymentMethod  models.PaymentMethod  `json:"payment_method"`
	CashAmount     float64               `json:"cash_amount"`
}

// CheckoutPatch carries partial form updates; nil fields are not applied.
type CheckoutPatch struct {
	DeliveryMethod *models.DeliveryMethod `json:"delivery_method,omitempty"`
	Name           *string                `json:"name,omitempty"`
	Phone          *string                `json:"phone,omitempty"`
	Street         *string                `json:"street,omitempty"`
	City           *string                `json:"city,omitempty"`
	Reference      *string                `json:"reference,omitempty"`
	Note           *string                `json:"note,omitempty"`
	PaymentMethod  *models.PaymentMethod  `json:"payment_method,omitempty"`
	CashAmount     *float64               `json:"cash_amount,omitempty"`
}

func defaultCheckoutForm() CheckoutForm {
	return CheckoutForm{
		DeliveryMethod: models.DeliveryToAddress,
		PaymentMethod:  models.PaymentCash,
	}
}

func (f *CheckoutForm) apply(patch CheckoutPatch) {
	if patch.DeliveryMethod != nil {
		f.DeliveryMethod = *patch.DeliveryMethod
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Phone != nil {
		f.Phone = *patch.Phone
	}
	if patch.Street != nil {
		f.Street = *patch.Street
	}
	if patch.City != nil {
		f.City = *patch.City
	}
	if patch.Reference != nil {
		f.Reference = *patch.Reference
	}
	if patch.Note != nil {
		f.Note = *patch.Note
	}
	if patch.PaymentMethod != nil {
		f.PaymentMethod = *patch.PaymentMethod
	}
	if patch.CashAmount != nil {
		f.CashAmount = *patch.CashAmount
	}
}

// Validate checks the whole form and reports every failing field at once.
func (f CheckoutForm) Validate() error {
	var result *multierror.Error

	if !f.DeliveryMethod.IsValid() {
		result = multierror.Append(result, fmt.Errorf("delivery method %q is not supported", f.DeliveryMethod))
	}
	if f.Name == "" {
		result = multierror.Append(result, errors.New("name is required"))
	}
	if f.Phone == "" {
		result = multierror.Append(result, errors.New("phone is required"))
	}
	if f.DeliveryMethod == models.DeliveryToAddress {
		if f.Street == "" {
			result = multierror.Append(result, errors.New("street is required for delivery"))
		}
		if f.City == "" {
			result = multierror.Append(result, errors.New("city is required for delivery"))
		}
	}
	if len(f.Note) > maxNoteLength {
		result = multierror.Append(result, fmt.Errorf("note exceeds %d characters", maxNoteLength))
	}
	if !f.PaymentMethod.IsValid() {
		result = multierror.Append(result, fmt.Errorf("payment method %q is not supported", f.PaymentMethod))
	}
	if f.PaymentMethod == models.PaymentCash && f.CashAmount <= 0 {
		result = multierror.Append(result, errors.New("cash amount must be greater than zero"))
	}

	return result.ErrorOrNil()
}
