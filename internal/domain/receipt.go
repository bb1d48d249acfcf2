package domain

import (
	"fmt"
	"strings"
)

// ReceiptLine is one cart line on the receipt.
type ReceiptLine struct {
	Quantity  int     `json:"quantity"`
	Product   string  `json:"product"`
	LineTotal float64 `json:"line_total"`
}

// Receipt records what a successful checkout charged.
type Receipt struct {
	Lines            []ReceiptLine `json:"lines"`
	Subtotal         float64       `json:"subtotal"`
	Shipping         float64       `json:"shipping"`
	Total            float64       `json:"total"`
	RemainingBalance float64       `json:"remaining_balance"`
}

// Render produces the fixed-format console receipt. Numeric fields are
// printed as raw floats, no currency rounding.
func (r *Receipt) Render() string {
	var b strings.Builder
	b.WriteString("=== Receipt ===\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%dX%s\t%v\n", line.Quantity, line.Product, line.LineTotal)
	}
	b.WriteString("-----------------------\n")
	fmt.Fprintf(&b, "Subtotal: %v\n", r.Subtotal)
	fmt.Fprintf(&b, "Shipping: %v\n", r.Shipping)
	fmt.Fprintf(&b, "Total: %v\n", r.Total)
	fmt.Fprintf(&b, "Remaining Balance:%v", r.RemainingBalance)
	return b.String()
}
