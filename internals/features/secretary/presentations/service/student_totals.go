package service

// StudentClassCount is one grade row of a presentation submission.
type StudentClassCount struct {
	ClassType string
	Boys      int
	Girls     int
}

// StudentTotals is the audience size of a presentation broken down by gender.
type StudentTotals struct {
	Boys  int
	Girls int
	Total int
}

// CalculateStudentTotals sums the rows that belong to the presentation's
// class band. Rows for grades outside the band are kept on the record but do
// not contribute, so a junior-band submission carrying a stray STD_9 row
// still totals only its own grades.
func CalculateStudentTotals(classGroup string, rows []StudentClassCount) StudentTotals {
	band, ok := RowsForClassGroup(classGroup)
	if !ok {
		return StudentTotals{}
	}

	inBand := make(map[string]struct{}, len(band))
	for _, code := range band {
		inBand[code] = struct{}{}
	}

	var totals StudentTotals
	for _, row := range rows {
		if _, ok := inBand[row.ClassType]; !ok {
			continue
		}
		totals.Boys += row.Boys
		totals.Girls += row.Girls
	}
	totals.Total = totals.Boys + totals.Girls
	return totals
}
