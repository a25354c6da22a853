package renderer

import (
	"strings"
	"testing"

	"github.com/hqassab/faktur"
)

func sampleInvoice() faktur.Invoice {
	items := []faktur.Item{
		{Name: "Trout", Weight: faktur.Q(2), UnitPrice: faktur.A(150000)},
		{Name: "Shrimp", Weight: faktur.Q(1.5), UnitPrice: faktur.A(20000)},
	}
	inv := faktur.Invoice{
		No:       7,
		Date:     "1404/2/10",
		Customer: "Sara",
		Items:    items,
	}
	inv.Total = inv.Sum()
	return inv
}

func TestInvoice(t *testing.T) {
	got := Invoice(sampleInvoice())
	for _, want := range []string{
		"# Sales Invoice",
		"Number: 7",
		"Date: 1404/2/10",
		"Customer: Sara",
		"Trout",
		"150,000",
		"300,000",
		"Shrimp",
		"30,000",
		"**Grand Total**",
		"**330,000**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Invoice() missing %q in:\n%s", want, got)
		}
	}
}

func TestInvoiceText(t *testing.T) {
	got := InvoiceText(sampleInvoice())
	for _, want := range []string{
		"Sales Invoice\n",
		"Number:\t7\n",
		"Customer:\tSara\n",
		"1\tTrout\t2\t150,000\t300,000\n",
		"Grand Total:\t330,000\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InvoiceText() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "#") && !strings.Contains(got, "#\tProduct") {
		t.Error("plain text form must not carry markdown markup")
	}
}

func TestReport(t *testing.T) {
	inv := sampleInvoice()
	other := faktur.Invoice{
		No: 8, Date: "1404/2/11", Customer: "Ali",
		Items: inv.Items[:1], Total: faktur.A(300000),
	}
	got := Report([]faktur.Invoice{inv, other})
	for _, want := range []string{
		"# Invoices",
		"Sara",
		"Ali",
		"330,000",
		"300,000",
		"**630,000**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Report() missing %q in:\n%s", want, got)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	got := Report(nil)
	if !strings.Contains(got, "No invoices.") {
		t.Errorf("Report(nil) = %q, want the empty notice", got)
	}
}
