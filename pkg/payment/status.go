package payment

// IntentStatus is the status of a payment intent as reported by the API.
// Values not listed below decode and re-encode unchanged.
type IntentStatus string

const (
	// IntentSucceeded indicates the payment has completed successfully.
	IntentSucceeded IntentStatus = "succeeded"
	// IntentFailed indicates the payment has failed.
	IntentFailed IntentStatus = "failed"
	// IntentCancelled indicates the payment was cancelled before completion.
	IntentCancelled IntentStatus = "cancelled"
	// IntentProcessing indicates the payment is still being processed.
	IntentProcessing IntentStatus = "processing"
	IntentRequiresCustomerAction IntentStatus = "requires_customer_action"
	IntentRequiresMerchantAction IntentStatus = "requires_merchant_action"
	IntentRequiresPaymentMethod  IntentStatus = "requires_payment_method"
	IntentRequiresConfirmation   IntentStatus = "requires_confirmation"
	IntentRequiresCapture        IntentStatus = "requires_capture"
	IntentPartiallyCaptured      IntentStatus = "partially_captured"
	// IntentPartiallyCapturedAndCapturable indicates part of the amount was
	// captured and the rest can still be.
	IntentPartiallyCapturedAndCapturable IntentStatus = "partially_captured_and_capturable"
)

// IsKnown reports whether s is one of the declared statuses.
func (s IntentStatus) IsKnown() bool {
	switch s {
	case IntentSucceeded, IntentFailed, IntentCancelled, IntentProcessing,
		IntentRequiresCustomerAction, IntentRequiresMerchantAction,
		IntentRequiresPaymentMethod, IntentRequiresConfirmation,
		IntentRequiresCapture, IntentPartiallyCaptured,
		IntentPartiallyCapturedAndCapturable:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected.
// Unknown statuses are never terminal.
func (s IntentStatus) IsTerminal() bool {
	switch s {
	case IntentSucceeded, IntentFailed, IntentCancelled:
		return true
	}
	return false
}

func (s IntentStatus) String() string {
	return string(s)
}
