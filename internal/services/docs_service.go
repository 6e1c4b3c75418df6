package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/domain/models"
	"marketplace/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders invoice PDFs for orders. Access control happens in
// the order services; this only formats rows it is handed.
type DocsService struct{}

// OrderInvoice renders a purchase order invoice.
func (DocsService) OrderInvoice(o models.PurchaseOrder) ([]byte, string, error) {
	invNo := fmt.Sprintf("INV-VHC-%d", o.ID)
	desc := fmt.Sprintf("Vehicle %s %s", safe(o.VehicleBrand, "-"), safe(o.VehicleModel, "-"))
	return buildInvoicePDF(invoiceData{
		Number:     invNo,
		BuyerName:  o.BuyerName,
		BuyerPhone: o.BuyerPhone,
		Lines: []invoiceLine{
			{Desc: desc, Qty: 1, Unit: o.VehiclePrice},
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	})
}

// PartOrderInvoice renders a part order invoice.
func (DocsService) PartOrderInvoice(o models.PartOrder) ([]byte, string, error) {
	invNo := fmt.Sprintf("INV-PRT-%d", o.ID)
	desc := fmt.Sprintf("Part %s (%s)", safe(o.PartName, "-"), safe(o.PartBrand, "-"))
	qty := o.Quantity
	if qty < 1 {
		qty = 1
	}
	return buildInvoicePDF(invoiceData{
		Number:     invNo,
		BuyerName:  o.BuyerName,
		BuyerPhone: o.BuyerPhone,
		Lines: []invoiceLine{
			{Desc: desc, Qty: qty, Unit: o.PartPrice},
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	})
}

type invoiceLine struct {
	Desc string
	Qty  int
	Unit int64
}

type invoiceData struct {
	Number     string
	BuyerName  string
	BuyerPhone string
	Lines      []invoiceLine
	Status     string
	CreatedAt  time.Time
}

func buildInvoicePDF(d invoiceData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+d.Number)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+utils.FormatDateTime(d.CreatedAt))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status     : "+strings.ToUpper(d.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(d.BuyerName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(d.BuyerPhone, "-")))
	pdf.Ln(10)

	var total int64
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(110, 7, "Description")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(0, 7, "Amount")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range d.Lines {
		amount := line.Unit * int64(line.Qty)
		total += amount
		pdf.Cell(110, 7, line.Desc)
		pdf.Cell(20, 7, fmt.Sprintf("%d", line.Qty))
		pdf.Cell(0, 7, utils.FormatRupiah(amount))
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 7, "Total")
	pdf.Cell(0, 7, utils.FormatRupiah(total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this invoice confirms the order as recorded by the marketplace. Payment and handover are arranged directly with the dealership.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", d.Number)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
