package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var bulan = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// FormatDateID memformat tanggal gaya surat resmi, contoh "5 Maret 2025"
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), bulan[t.Month()], t.Year())
}

type ClinicLetterhead struct {
	ClinicName    string
	ClinicAddress string
	HeadName      string
	HeadNIP       string
}

type LetterStudent struct {
	FullName     string
	RecordNumber string
	Grade        string
	BirthDate    string
}

// PermissionLetterData: surat izin tidak masuk berdasarkan satu rekam medis
type PermissionLetterData struct {
	Letterhead ClinicLetterhead
	Student    LetterStudent
	VisitDate  time.Time
	Diagnosis  string
	Treatment  string
	IssuedAt   time.Time
}

// SickLeaveCertificateData: surat keterangan sakit untuk izin yang disetujui
type SickLeaveCertificateData struct {
	Letterhead   ClinicLetterhead
	Student      LetterStudent
	StartDate    time.Time
	EndDate      time.Time
	DurationDays int
	Reason       string
	IssuedAt     time.Time
	QRCodePNG    []byte // QR code sebagai bytes PNG, boleh kosong
}

func drawLetterhead(pdf *gofpdf.Fpdf, lh ClinicLetterhead) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 8, lh.ClinicName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 5, lh.ClinicAddress, "", 1, "C", false, 0, "")

	// Garis pembatas
	pdf.SetDrawColor(0, 51, 102)
	pdf.SetLineWidth(0.8)
	pdf.Line(20, pdf.GetY()+3, 190, pdf.GetY()+3)
	pdf.Ln(8)
}

func drawStudentRows(pdf *gofpdf.Fpdf, rows [][]string) {
	colLabel := 50.0
	colValue := 120.0

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(colLabel, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(5, 6, ":", "", 0, "C", false, 0, "")
		pdf.CellFormat(colValue, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func drawSignature(pdf *gofpdf.Fpdf, lh ClinicLetterhead, issuedAt time.Time) {
	currentY := pdf.GetY()
	signX := 20 + 170.0 - 65

	pdf.SetXY(signX, currentY)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(65, 5, fmt.Sprintf("Diterbitkan, %s", FormatDateID(issuedAt)), "", 1, "C", false, 0, "")
	pdf.SetX(signX)
	pdf.CellFormat(65, 5, "Kepala Klinik,", "", 1, "C", false, 0, "")
	pdf.Ln(18) // ruang tanda tangan
	pdf.SetX(signX)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(65, 5, lh.HeadName, "", 1, "C", false, 0, "")
	if lh.HeadNIP != "" {
		pdf.SetX(signX)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(65, 5, fmt.Sprintf("NIP. %s", lh.HeadNIP), "", 1, "C", false, 0, "")
	}
}

func drawFooter(pdf *gofpdf.Fpdf, issuedAt time.Time, withQRNote bool) {
	note := "Dokumen ini diterbitkan secara digital pada %s"
	if withQRNote {
		note += " | Verifikasi keaslian dokumen dengan scan QR Code"
	}
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5,
		fmt.Sprintf(note, issuedAt.Format("02/01/2006 15:04")),
		"", 1, "C", false, 0, "")
}

// GeneratePermissionLetterPDF membuat surat izin dari satu rekam medis.
// Murni formatting: tidak menyentuh jaringan maupun storage.
func GeneratePermissionLetterPDF(data PermissionLetterData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	drawLetterhead(pdf, data.Letterhead)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "SURAT IZIN TIDAK MASUK", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6,
		"Yang bertanda tangan di bawah ini, Kepala Klinik menerangkan bahwa mahasiswa berikut:",
		"", "L", false)
	pdf.Ln(3)

	drawStudentRows(pdf, [][]string{
		{"Nama Lengkap", data.Student.FullName},
		{"No. Rekam Medis", data.Student.RecordNumber},
		{"Program/Kelas", data.Student.Grade},
		{"Tanggal Lahir", data.Student.BirthDate},
	})

	pdf.MultiCell(0, 6,
		fmt.Sprintf("Telah diperiksa di klinik pada tanggal %s dengan diagnosis %s dan penanganan %s.",
			FormatDateID(data.VisitDate), data.Diagnosis, data.Treatment),
		"", "L", false)
	pdf.Ln(3)
	pdf.MultiCell(0, 6,
		"Berdasarkan pemeriksaan tersebut, yang bersangkutan dipandang perlu diberikan izin untuk tidak mengikuti kegiatan akademik.",
		"", "L", false)
	pdf.Ln(5)

	pdf.MultiCell(0, 6,
		"Surat keterangan ini dibuat dengan sebenarnya untuk dapat dipergunakan sebagaimana mestinya.",
		"", "L", false)
	pdf.Ln(5)

	drawSignature(pdf, data.Letterhead, data.IssuedAt)
	drawFooter(pdf, data.IssuedAt, false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateSickLeaveCertificatePDF membuat surat keterangan sakit untuk izin
// yang sudah disetujui, lengkap dengan QR verifikasi.
func GenerateSickLeaveCertificatePDF(data SickLeaveCertificateData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	drawLetterhead(pdf, data.Letterhead)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "SURAT KETERANGAN SAKIT", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6,
		"Yang bertanda tangan di bawah ini, Kepala Klinik menerangkan bahwa mahasiswa berikut:",
		"", "L", false)
	pdf.Ln(3)

	drawStudentRows(pdf, [][]string{
		{"Nama Lengkap", data.Student.FullName},
		{"No. Rekam Medis", data.Student.RecordNumber},
		{"Program/Kelas", data.Student.Grade},
	})

	pdf.MultiCell(0, 6,
		fmt.Sprintf("Dalam keadaan sakit (%s) sehingga perlu beristirahat selama %d hari, terhitung mulai tanggal %s sampai dengan %s.",
			data.Reason, data.DurationDays,
			FormatDateID(data.StartDate), FormatDateID(data.EndDate)),
		"", "L", false)
	pdf.Ln(5)

	pdf.MultiCell(0, 6,
		"Surat keterangan ini dibuat dengan sebenarnya untuk dapat dipergunakan sebagaimana mestinya.",
		"", "L", false)
	pdf.Ln(5)

	// Kolom kiri: QR code, kolom kanan: tanda tangan
	currentY := pdf.GetY()
	if len(data.QRCodePNG) > 0 {
		pdf.SetFont("Arial", "", 8)
		pdf.SetXY(20, currentY)
		pdf.CellFormat(40, 5, "Scan untuk verifikasi:", "", 1, "L", false, 0, "")

		qrReader := bytes.NewReader(data.QRCodePNG)
		pdf.RegisterImageOptionsReader("qrcode", gofpdf.ImageOptions{ImageType: "PNG"}, qrReader)
		pdf.ImageOptions("qrcode", 20, currentY+6, 35, 35, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}
	pdf.SetY(currentY)

	drawSignature(pdf, data.Letterhead, data.IssuedAt)
	drawFooter(pdf, data.IssuedAt, len(data.QRCodePNG) > 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
