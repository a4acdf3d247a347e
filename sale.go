package shopkeeper

// Sale represents one completed transaction. It is immutable once recorded:
// the sales log is append-only, in chronological order.
//
// The sold item is not required to still exist in the inventory; removing an
// item never rewrites history.
type Sale struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	TotalPrice Money  `json:"total_price"`
}
