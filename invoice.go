package faktur

import "strings"

// Item is one invoice line: a product name sold by weight at a unit price.
// The name is a text snapshot of the product at the time of sale, not a
// reference into the product registry.
type Item struct {
	Name      string   `json:"name"`
	Weight    Quantity `json:"weight"`
	UnitPrice Amount   `json:"unitPrice"`
}

// Total returns the line total, weight times unit price.
func (it Item) Total() Amount { return it.UnitPrice.Mul(it.Weight) }

// Invoice is one sales invoice. No is unique across the book, assigned once
// at creation and preserved across edits. Customer, like Item.Name, is a
// denormalized text snapshot: deleting or renaming the customer later leaves
// it untouched.
type Invoice struct {
	No       int    `json:"no"`
	Date     string `json:"date"` // canonical "Y/M/D", no leading zeros
	Customer string `json:"customer"`
	Items    []Item `json:"items"`
	Total    Amount `json:"total"`
}

// Sum returns the sum of the line totals.
func (inv Invoice) Sum() Amount { return sumItems(inv.Items) }

func sumItems(items []Item) Amount {
	var total Amount
	for _, it := range items {
		total = total.Add(it.Total())
	}
	return total
}

// validateInvoice checks the interactive creation rules: every item needs a
// name and strictly positive weight and unit price, the customer must be
// set, and at least one item is required. The import path deliberately does
// not share these rules (see Import).
func validateInvoice(customer string, items []Item) error {
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return invalidf("item name", "missing product name")
		}
		if !it.Weight.IsPositive() {
			return invalidf("item weight", "%q must be greater than zero", it.Name)
		}
		if !it.UnitPrice.IsPositive() {
			return invalidf("item unit price", "%q must be greater than zero", it.Name)
		}
	}
	if customer == "" {
		return invalidf("customer", "a customer is required")
	}
	if len(items) == 0 {
		return invalidf("items", "at least one item is required")
	}
	return nil
}
