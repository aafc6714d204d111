package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Nomor rekam medis berbentuk "<institutionID> -- <seq>", contoh "DMC -- 12".
const recordNumberSeparator = " -- "

// FormatRecordNumber menyusun nomor rekam medis dari ID institusi dan sequence
func FormatRecordNumber(institutionID string, seq int) string {
	return fmt.Sprintf("%s%s%d", institutionID, recordNumberSeparator, seq)
}

// ParseRecordSequence mengambil angka sequence dari sebuah nomor rekam medis.
// Nomor yang tidak berformat "<inst> -- <seq>" dianggap sequence 0.
func ParseRecordSequence(recordNumber string) int {
	idx := strings.LastIndex(recordNumber, recordNumberSeparator)
	if idx < 0 {
		return 0
	}
	seq, err := strconv.Atoi(strings.TrimSpace(recordNumber[idx+len(recordNumberSeparator):]))
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}

// NextRecordSequence mencari max(sequence) dari semua nomor yang ada lalu +1.
// Max+1, bukan count+1: nomor yang pernah dipakai tidak boleh terpakai ulang
// meski ada celah di tengah deret.
func NextRecordSequence(existing []string) int {
	max := 0
	for _, rn := range existing {
		if seq := ParseRecordSequence(rn); seq > max {
			max = seq
		}
	}
	return max + 1
}
