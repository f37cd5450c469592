// Package gender_enum defines the gender codes stored on a contact.
package gender_enum

// Gender codes. 0 is never stored; the admin client sends it as the
// "no filter" value of the gender select box.
const (
	UNFILTERED int8 = 0
	MALE       int8 = 1
	FEMALE     int8 = 2
	OTHER      int8 = 3
)

// Label returns the Japanese label used on the admin screen and in the
// CSV export. Unknown codes map to the empty string.
func Label(gender int8) string {
	switch gender {
	case MALE:
		return "男性"
	case FEMALE:
		return "女性"
	case OTHER:
		return "その他"
	default:
		return ""
	}
}

// Valid reports whether the code is a storable gender value.
func Valid(gender int8) bool {
	return gender == MALE || gender == FEMALE || gender == OTHER
}
