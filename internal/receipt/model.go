package receipt

// Item is one line entry on a receipt. Price stays a string so the
// two-decimal formatting the client sent is preserved exactly.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// Receipt is a purchase record submitted for scoring. Dates, times and
// currency amounts are kept in their wire form and validated separately.
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}

// Breakdown maps a scoring rule name to the points it contributed.
type Breakdown map[string]int

// StoredReceipt is an accepted receipt with its computed score.
// Immutable once saved; no update or delete path exists.
type StoredReceipt struct {
	ID      string  `json:"id"`
	Receipt Receipt `json:"receipt"`
	Points  int     `json:"points"`
}
