package models

// Gender codes accepted for a patient record.
var Genders = []string{"M", "F", "O"}

// BloodGroups lists the accepted blood group labels.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Patient defines the structure for patient records.
type Patient struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"index"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone" gorm:"index"`
	Address    string `json:"address"` // Optional field
	BloodGroup string `json:"blood_group"`
}

// ValidGender reports whether g is one of the accepted gender codes.
func ValidGender(g string) bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// ValidBloodGroup reports whether bg is one of the accepted blood groups.
func ValidBloodGroup(bg string) bool {
	for _, v := range BloodGroups {
		if bg == v {
			return true
		}
	}
	return false
}
