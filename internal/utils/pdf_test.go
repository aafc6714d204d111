package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateID(t *testing.T) {
	assert.Equal(t, "5 Maret 2025", FormatDateID(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17 Agustus 1945", FormatDateID(time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC)))
}

func testLetterhead() ClinicLetterhead {
	return ClinicLetterhead{
		ClinicName:    "Klinik Kampus DMC",
		ClinicAddress: "Jl. Pendidikan No. 1, Jakarta",
		HeadName:      "dr. Siti Rahma",
		HeadNIP:       "19800101 200501 2 001",
	}
}

func TestGeneratePermissionLetterPDF(t *testing.T) {
	pdfBytes, err := GeneratePermissionLetterPDF(PermissionLetterData{
		Letterhead: testLetterhead(),
		Student: LetterStudent{
			FullName:     "Budi Santoso",
			RecordNumber: "DMC -- 4",
			Grade:        "TI-2022",
			BirthDate:    "17 April 2003",
		},
		VisitDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Diagnosis: "Flu",
		Treatment: "Istirahat dan banyak minum",
		IssuedAt:  time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateSickLeaveCertificatePDF(t *testing.T) {
	qrPNG, err := GenerateQRCodePNG("http://localhost:8080/api/v1/verify/abc123", 150)
	require.NoError(t, err)

	pdfBytes, err := GenerateSickLeaveCertificatePDF(SickLeaveCertificateData{
		Letterhead: testLetterhead(),
		Student: LetterStudent{
			FullName:     "Budi Santoso",
			RecordNumber: "DMC -- 4",
			Grade:        "TI-2022",
		},
		StartDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		DurationDays: 3,
		Reason:       "Demam tinggi",
		IssuedAt:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		QRCodePNG:    qrPNG,
	})

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

// QR kosong tidak boleh bikin panic, cukup surat tanpa kotak verifikasi
func TestGenerateSickLeaveCertificatePDF_NoQR(t *testing.T) {
	pdfBytes, err := GenerateSickLeaveCertificatePDF(SickLeaveCertificateData{
		Letterhead:   testLetterhead(),
		Student:      LetterStudent{FullName: "Budi Santoso"},
		StartDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DurationDays: 1,
		Reason:       "Sakit kepala",
		IssuedAt:     time.Now(),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
