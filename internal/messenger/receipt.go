package messenger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value that is encoded as a bare JSON number.
type Amount struct {
	decimal.Decimal
}

// NewAmount parses a decimal string such as "4200.00". It panics on malformed input and is meant for literals.
func NewAmount(value string) Amount {
	return Amount{decimal.RequireFromString(value)}
}

// AmountFromInt returns a whole unit amount.
func AmountFromInt(value int64) Amount {
	return Amount{decimal.NewFromInt(value)}
}

// MarshalJSON writes the amount without quotes, which is what the send API expects.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Receipt is the content of a receipt template.
type Receipt struct {
	RecipientName string
	OrderNumber   string
	Currency      string
	PaymentMethod string
	Timestamp     time.Time
	OrderURL      string
	Items         []ReceiptItem
	Address       *Address
	ShippingCost  Amount
	TotalTax      Amount
	Adjustments   []Adjustment
}

// ReceiptItem is one purchased line.
type ReceiptItem struct {
	Title    string
	Subtitle string
	ImageURL string
	Quantity int
	Price    Amount
}

// LineTotal is price multiplied by quantity.
func (i ReceiptItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewReceiptSummary computes subtotal as the exact sum of price times quantity.
// Total cost adds shipping, tax and all adjustments to the subtotal.
func NewReceiptSummary(items []ReceiptItem, shipping, tax Amount, adjustments []Adjustment) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	total := subtotal.Add(shipping.Decimal).Add(tax.Decimal)
	for _, adj := range adjustments {
		total = total.Add(adj.Amount.Decimal)
	}

	summary := Summary{
		Subtotal:  Amount{subtotal},
		TotalCost: Amount{total},
	}
	if !shipping.IsZero() {
		summary.ShippingCost = &Amount{shipping.Decimal}
	}
	if !tax.IsZero() {
		summary.TotalTax = &Amount{tax.Decimal}
	}
	return summary
}

// NewReceiptTemplate builds a receipt template and derives its summary from the line items.
func NewReceiptTemplate(recipientID string, r Receipt) (SendRequest, error) {
	if len(r.Items) == 0 {
		return SendRequest{}, ErrNoElements
	}
	elements := make([]Element, 0, len(r.Items))
	for _, item := range r.Items {
		price := item.Price
		elements = append(elements, Element{
			Title:    item.Title,
			Subtitle: item.Subtitle,
			ImageURL: item.ImageURL,
			Quantity: item.Quantity,
			Price:    &price,
			Currency: r.Currency,
		})
	}
	summary := NewReceiptSummary(r.Items, r.ShippingCost, r.TotalTax, r.Adjustments)

	payload := AttachmentPayload{
		TemplateType:  TemplateReceipt,
		RecipientName: r.RecipientName,
		OrderNumber:   r.OrderNumber,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		OrderURL:      r.OrderURL,
		Elements:      elements,
		Address:       r.Address,
		Summary:       &summary,
		Adjustments:   r.Adjustments,
	}
	if !r.Timestamp.IsZero() {
		payload.Timestamp = r.Timestamp.Unix()
	}
	return newTemplate(recipientID, payload), nil
}
