package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

// CertificateRenderer turns a certificate record into a downloadable PDF.
// Render is a pure function of its inputs; it holds no state and touches no
// store, so it needs no special concurrency handling.
type CertificateRenderer struct{}

func NewCertificateRenderer() *CertificateRenderer {
	return &CertificateRenderer{}
}

const (
	certHeaderR, certHeaderG, certHeaderB = 30, 64, 175
	qrImageSizePx                         = 256
)

// Render produces the certificate document bytes.
func (r *CertificateRenderer) Render(cert *entity.Certificate, course *entity.Course, user *entity.User) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Certificate - %s", course.Title), true)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Border
	pdf.SetDrawColor(certHeaderR, certHeaderG, certHeaderB)
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")

	pdf.SetY(40)
	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetTextColor(certHeaderR, certHeaderG, certHeaderB)
	pdf.CellFormat(0, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetLineWidth(0.6)
	pdf.Line(45, 62, pageW-45, 62)

	pdf.SetY(75)
	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(certHeaderR, certHeaderG, certHeaderB)
	pdf.CellFormat(0, 14, user.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "has successfully completed", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(certHeaderR, certHeaderG, certHeaderB)
	pdf.CellFormat(0, 12, course.Title, "", 1, "C", false, 0, "")

	pdf.SetY(150)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	details := []string{
		fmt.Sprintf("Certificate ID: %s", cert.Code),
		fmt.Sprintf("Issue Date: %s", cert.IssueDate.Format("January 2, 2006")),
		fmt.Sprintf("Expiry Date: %s", cert.ExpiryDate.Format("January 2, 2006")),
		fmt.Sprintf("Score: %.1f%%", cert.Score),
	}
	for _, detail := range details {
		pdf.CellFormat(0, 8, detail, "", 1, "C", false, 0, "")
	}

	if cert.QRCode != "" {
		if err := r.drawQR(pdf, cert.QRCode, pageW); err != nil {
			return nil, err
		}
	}

	pdf.SetY(pageH - 50)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(certHeaderR, certHeaderG, certHeaderB)
	pdf.CellFormat(0, 8, "River Garden Training", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "Professional Healthcare Training & Compliance", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *CertificateRenderer) drawQR(pdf *fpdf.Fpdf, payload string, pageW float64) error {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSizePx)
	if err != nil {
		return fmt.Errorf("failed to encode certificate QR code: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("certificate-qr", pageW/2-15, 192, 30, 30, false, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("failed to embed certificate QR code: %v", pdf.Error())
	}
	return nil
}
