package service

/* ==============================
   Class bands & grade labels
============================== */

const (
	ClassGroupJunior  = "5-7"
	ClassGroupMiddle  = "8-10"
	ClassGroupCollege = "college"
)

// classGroupRows lists the grade codes whose student rows feed each band's
// totals. Rows outside the band are stored but never counted.
var classGroupRows = map[string][]string{
	ClassGroupJunior:  {"STD_5", "STD_6", "STD_7"},
	ClassGroupMiddle:  {"STD_8", "STD_9", "STD_10"},
	ClassGroupCollege: {"STD_11", "STD_12", "COLLEGE"},
}

// RowsForClassGroup returns the grade codes that belong to a band.
func RowsForClassGroup(classGroup string) ([]string, bool) {
	rows, ok := classGroupRows[classGroup]
	return rows, ok
}

// MapClassType converts a grade code to its display label. Unknown codes fall
// back to "Five", matching what reporting clients have always received.
func MapClassType(classType string) string {
	switch classType {
	case "STD_5":
		return "Five"
	case "STD_6":
		return "Six"
	case "STD_7":
		return "Seven"
	case "STD_8":
		return "Eight"
	case "STD_9":
		return "Nine"
	case "STD_10":
		return "Ten"
	case "STD_11":
		return "Eleven"
	case "STD_12":
		return "Twelve"
	case "COLLEGE":
		return "SrCollege"
	default:
		return "Five"
	}
}

var validRatings = map[string]struct{}{
	"excellent":    {},
	"good":         {},
	"better":       {},
	"satisfactory": {},
}

// ValidRating reports whether the school's feedback rating is one of the
// accepted values.
func ValidRating(rating string) bool {
	_, ok := validRatings[rating]
	return ok
}

var validMediums = map[string]struct{}{
	"english": {},
	"hindi":   {},
	"marathi": {},
	"urdu":    {},
}

// ValidMedium reports whether the teaching medium is one the programme
// supports.
func ValidMedium(medium string) bool {
	_, ok := validMediums[medium]
	return ok
}
