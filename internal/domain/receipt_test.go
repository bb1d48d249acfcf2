package domain_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReceipt_Render(t *testing.T) {
	t.Run("renders the fixed console format", func(t *testing.T) {
		receipt := &domain.Receipt{
			Lines: []domain.ReceiptLine{
				{Quantity: 2, Product: "Milk", LineTotal: 200},
				{Quantity: 1, Product: "Biscuits", LineTotal: 150},
			},
			Subtotal:         350,
			Shipping:         45,
			Total:            395,
			RemainingBalance: 49605,
		}

		want := "=== Receipt ===\n" +
			"2XMilk\t200\n" +
			"1XBiscuits\t150\n" +
			"-----------------------\n" +
			"Subtotal: 350\n" +
			"Shipping: 45\n" +
			"Total: 395\n" +
			"Remaining Balance:49605"

		assert.Equal(t, want, receipt.Render())
	})

	t.Run("prints fractional values without rounding", func(t *testing.T) {
		receipt := &domain.Receipt{
			Lines: []domain.ReceiptLine{
				{Quantity: 1, Product: "Milk", LineTotal: 99.5},
			},
			Subtotal:         99.5,
			Shipping:         12.75,
			Total:            112.25,
			RemainingBalance: 887.75,
		}

		rendered := receipt.Render()
		assert.Contains(t, rendered, "1XMilk\t99.5\n")
		assert.Contains(t, rendered, "Shipping: 12.75\n")
		assert.Contains(t, rendered, "Remaining Balance:887.75")
	})
}
