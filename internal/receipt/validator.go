package receipt

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// FieldError reports a single validation failure with the field path
// that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks every field rule and returns all failures. On success
// it trims retailer and item descriptions in place and returns nil.
func (r *Receipt) Validate() []FieldError {
	var errs []FieldError

	if err := validateCharset(r.Retailer, "-&"); err != nil {
		errs = append(errs, FieldError{
			Field:   "retailer",
			Message: "must contain only letters, numbers, spaces, hyphens, or ampersands",
		})
	}

	if err := validateAmount(r.Total); err != nil {
		errs = append(errs, FieldError{Field: "total", Message: err.Error()})
	}

	if _, err := time.Parse(dateLayout, r.PurchaseDate); err != nil {
		errs = append(errs, FieldError{
			Field:   "purchaseDate",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}

	if _, err := time.Parse(timeLayout, r.PurchaseTime); err != nil {
		errs = append(errs, FieldError{
			Field:   "purchaseTime",
			Message: "must be a valid 24-hour time in HH:MM format",
		})
	}

	if len(r.Items) == 0 {
		errs = append(errs, FieldError{
			Field:   "items",
			Message: "must contain at least one item",
		})
	}

	for i, item := range r.Items {
		if err := validateCharset(item.ShortDescription, "-_"); err != nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].shortDescription", i),
				Message: "must contain only letters, numbers, spaces, hyphens, or underscores",
			})
		}
		if err := validateAmount(item.Price); err != nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	r.Retailer = strings.TrimSpace(r.Retailer)
	for i := range r.Items {
		r.Items[i].ShortDescription = strings.TrimSpace(r.Items[i].ShortDescription)
	}
	return nil
}

// validateCharset accepts alphanumerics, whitespace, and the runes in extra.
func validateCharset(s, extra string) error {
	for _, c := range s {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || unicode.IsSpace(c) {
			continue
		}
		if strings.ContainsRune(extra, c) {
			continue
		}
		return fmt.Errorf("invalid character %q", c)
	}
	return nil
}

// validateAmount enforces the currency contract shared by price and total:
// a positive decimal with exactly two digits after the point.
func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("must be a valid number formatted as a string (e.g., %q)", "6.49")
	}
	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}
	dot := strings.LastIndex(s, ".")
	if dot < 0 || len(s)-dot-1 != 2 {
		return fmt.Errorf("must have exactly two decimal places")
	}
	return nil
}
