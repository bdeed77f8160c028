package core

// Contact is one parsed name/phone pair.
//
// PhoneNumber holds digits only, country code included and no leading "+".
// Every write to it goes through Locale.NormalizePhone.
type Contact struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,number"`
}

// Apply returns c with field f set to value. The phone branch is normalized,
// the name branch is stored as given. ok is false for an unknown field.
func (l Locale) Apply(c Contact, f Field, value string) (out Contact, ok bool) {
	switch f {
	case FieldName:
		c.DisplayName = value
	case FieldPhoneNumber:
		c.PhoneNumber = l.NormalizePhone(value)
	default:
		return c, false
	}
	return c, true
}
