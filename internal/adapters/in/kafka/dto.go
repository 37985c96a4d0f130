package kafka

// ValidationResult is the verdict message from the validation service.
type ValidationResult struct {
	OrderID string `json:"orderId"`
	IsValid bool   `json:"isValid"`
}

// AllocationResult is the outcome message from the inventory service.
type AllocationResult struct {
	Order            AllocationResultOrder `json:"beerOrder"`
	AllocationError  bool                  `json:"allocationError"`
	PendingInventory bool                  `json:"pendingInventory"`
}

// AllocationResultOrder carries the per-line allocation quantities.
type AllocationResultOrder struct {
	ID    string                 `json:"id"`
	Lines []AllocationResultLine `json:"lines"`
}

// AllocationResultLine reports the allocated quantity for one line.
type AllocationResultLine struct {
	ID                string `json:"id"`
	QuantityAllocated int    `json:"quantityAllocated"`
}
