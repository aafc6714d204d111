package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecordNumber(t *testing.T) {
	assert.Equal(t, "DMC -- 1", FormatRecordNumber("DMC", 1))
	assert.Equal(t, "A1 -- 42", FormatRecordNumber("A1", 42))
}

func TestParseRecordSequence(t *testing.T) {
	assert.Equal(t, 12, ParseRecordSequence("DMC -- 12"))
	assert.Equal(t, 1, ParseRecordSequence("A1 -- 1"))

	// Nomor tidak berformat dianggap sequence 0
	assert.Equal(t, 0, ParseRecordSequence("DMC-12"))
	assert.Equal(t, 0, ParseRecordSequence("DMC -- abc"))
	assert.Equal(t, 0, ParseRecordSequence(""))
}

func TestNextRecordSequence_MaxPlusOne(t *testing.T) {
	// Celah di tengah deret tidak dipakai ulang
	assert.Equal(t, 4, NextRecordSequence([]string{"A1 -- 1", "A1 -- 3"}))
	assert.Equal(t, 1, NextRecordSequence(nil))
	assert.Equal(t, 1, NextRecordSequence([]string{}))
	assert.Equal(t, 8, NextRecordSequence([]string{"DMC -- 7", "DMC -- 2", "tidak-valid"}))
}

func TestFormatParse_RoundTrip(t *testing.T) {
	for _, seq := range []int{1, 9, 10, 123} {
		rn := FormatRecordNumber("DMC", seq)
		assert.Equal(t, seq, ParseRecordSequence(rn))
	}
}
