// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/shoplight-backend/internal/config"
	"github.com/your-org/shoplight-backend/internal/domain/checkout"
	"github.com/your-org/shoplight-backend/internal/pkg/format"
)

// Service handles receipt PDF generation. It owns layout only; all amounts
// arrive precomputed in the finalized order summary.
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt renders a finalized order summary as a printable PDF.
func (s *Service) GenerateReceipt(summary *checkout.OrderSummary) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName:   s.config.App.StoreName,
		OrderNumber: summary.OrderNumber,
		Subtotal:    format.Price(summary.Subtotal),
		Tax:         format.Price(summary.Tax),
		Total:       format.Price(summary.Total),
	}
	if summary.ConfirmedAt != nil {
		data.Date = summary.ConfirmedAt.Format("January 2, 2006 15:04")
	}
	for _, line := range summary.Lines {
		data.Items = append(data.Items, receiptLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: format.Price(line.UnitPrice),
			LineTotal: format.Price(line.LineTotal),
		})
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData is the data passed to the receipt template.
type receiptData struct {
	StoreName   string
	OrderNumber string
	Date        string
	Items       []receiptLine
	Subtotal    string
	Tax         string
	Total       string
}

type receiptLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt - {{.StoreName}}</title>
    <style>
        body { font-family: Arial, Helvetica, sans-serif; padding: 20px; color: #111 }
        h1 { margin: 0 0 8px 0 }
        table { width: 100%; border-collapse: collapse; margin-top: 12px }
        td, th { border-bottom: 1px solid #eee; padding: 6px 8px }
        .center { text-align: center }
        .right { text-align: right }
        .totals { margin-top: 12px; width: 100% }
        .totals td { border: none }
        .grand td { font-weight: 700; padding-top: 8px }
        .thanks { margin-top: 18px }
    </style>
</head>
<body>
    <h1>{{.StoreName}}</h1>
    <div>Receipt {{.OrderNumber}} &mdash; {{.Date}}</div>
    <table>
        <thead>
            <tr>
                <th style="text-align:left">Item</th>
                <th class="center">Qty</th>
                <th class="right">Unit</th>
                <th class="right">Line</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td>{{.Name}}</td>
                <td class="center">{{.Quantity}}</td>
                <td class="right">${{.UnitPrice}}</td>
                <td class="right">${{.LineTotal}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>
    <table class="totals">
        <tr><td>Subtotal</td><td class="right">${{.Subtotal}}</td></tr>
        <tr><td>Tax (8%)</td><td class="right">${{.Tax}}</td></tr>
        <tr class="grand"><td>Total</td><td class="right">${{.Total}}</td></tr>
    </table>
    <div class="thanks">Thank you for shopping with us.</div>
</body>
</html>
`
