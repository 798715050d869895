package infra

// pdf.go — receipt generation using go-pdf/fpdf.
// Produces a thermal-receipt-style PDF for a completed order: header, order
// number and timestamp, line items, bold total, cash/change breakdown.
// The output file is saved to storagePath/receipt_{order_number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"tindahan/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF renders a PDF receipt for a recorded order and returns
// the absolute path to the generated file.
func GenerateReceiptPDF(order *model.Order, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("receipt_%s.pdf", order.OrderNumber)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Burger POS", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Order #%s", order.OrderNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, order.CreatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Cashier: %s", order.UserName), "", 1, "C", false, 0, "")
	if order.CustomerName != nil {
		pdf.CellFormat(contentW, 4, fmt.Sprintf("Customer: %s", *order.CustomerName), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	// Line items
	pdf.SetFont("Helvetica", "", 8)
	for _, item := range order.Items {
		pdf.CellFormat(contentW*0.6, 4, fmt.Sprintf("%dx %s", item.Quantity, item.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 4, item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	// Total
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.5, 5, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 5, order.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	// Payment breakdown
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW*0.5, 4, fmt.Sprintf("Paid (%s)", order.PaymentMethod), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 4, order.CashReceived.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW*0.5, 4, "Change", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 4, order.Change.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
