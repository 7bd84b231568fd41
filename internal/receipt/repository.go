package receipt

import "errors"

var ErrReceiptNotFound = errors.New("receipt not found")

// Repository defines the data-access contract for stored receipts.
// Service depends ONLY on this interface.
type Repository interface {
	// Save stores the receipt with its points under a fresh unique id
	// and returns that id.
	Save(r Receipt, points int) (string, error)

	// Find returns the stored receipt for an id, or ErrReceiptNotFound.
	Find(id string) (*StoredReceipt, error)
}
