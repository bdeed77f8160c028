package core

// Field selects which part of a Contact an edit targets.
type Field string

const (
	FieldName        Field = "name"
	FieldPhoneNumber Field = "phoneNumber"
)

// ParseField maps user input ("name", "phone", "phoneNumber") to a Field.
func ParseField(s string) (Field, bool) {
	switch s {
	case "name", "fn":
		return FieldName, true
	case "phone", "phoneNumber", "tel":
		return FieldPhoneNumber, true
	}
	return "", false
}

// PhoneStatus is a soft validity flag for display. It never blocks a record.
type PhoneStatus string

const (
	PhoneOK      PhoneStatus = "ok"
	PhoneEmpty   PhoneStatus = "empty"
	PhoneForeign PhoneStatus = "foreign"
)
