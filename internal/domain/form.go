package domain

// Budget range options shown on the form
const (
	BudgetUnder5k = "<5k"
	Budget5kTo20k = "5k-20k"
	BudgetOver20k = ">20k"
)

// Timeline options shown on the form (months)
const (
	Timeline1To3     = "1-3"
	Timeline3To6     = "3-6"
	TimelineFlexible = "flexible"
)

// IntakeForm holds the contact and project fields while the user is editing.
// No validation happens here; required checks run at submission time.
type IntakeForm struct {
	Name     string
	Company  string
	Email    string
	Phone    string
	Budget   string
	Timeline string
	Message  string
}

// SetField merges one field into the form, leaving the others untouched.
// Unknown field names are ignored.
func (f *IntakeForm) SetField(name, value string) {
	switch name {
	case "name":
		f.Name = value
	case "company":
		f.Company = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "budget":
		f.Budget = value
	case "timeline":
		f.Timeline = value
	case "message":
		f.Message = value
	}
}

// Reset clears every field to the empty string
func (f *IntakeForm) Reset() {
	*f = IntakeForm{}
}
