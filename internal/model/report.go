package model

// IllnessCount adalah hitungan kemunculan satu diagnosis dalam sebulan.
// Diagnosis dibandingkan apa adanya (exact string match), "Flu" dan "flu"
// dihitung terpisah.
type IllnessCount struct {
	Name  string `db:"diagnosis" json:"name"`
	Count int    `db:"count"     json:"count"`
}

// MonthlyStatistics: totalVisits dan topIllnesses dibatasi bulan yang diminta,
// totalStudents dan activeSickLeaves adalah hitungan global. Asimetri ini
// mengikuti perilaku sistem lama.
type MonthlyStatistics struct {
	Month            int            `json:"month"`
	Year             int            `json:"year"`
	TotalVisits      int            `json:"total_visits"`
	TotalStudents    int            `json:"total_students"`
	ActiveSickLeaves int            `json:"active_sick_leaves"`
	TopIllnesses     []IllnessCount `json:"top_illnesses"`
}
