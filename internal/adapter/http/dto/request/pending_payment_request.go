package request

// ToggleSelectionRequest flips the selection flag of one pending order.
type ToggleSelectionRequest struct {
	OrderID int64 `json:"order_id" validate:"required,gt=0"`
}

// ToggleAllRequest applies one selection state to every selectable order.
// SelectAll is a pointer so that an absent field fails validation instead of
// silently deselecting everything.
type ToggleAllRequest struct {
	SelectAll *bool `json:"select_all" validate:"required"`
}
