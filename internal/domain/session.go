package domain

// FormSession owns the state of one open intake form: the contact fields,
// the selection, and the single-submission-in-flight guard. All mutation
// happens on the session owner's side; no locking, there is no parallelism
// within one form session.
type FormSession struct {
	Form      IntakeForm
	Selection Selection

	submitting bool
}

// NewFormSession builds a session from a submitted payload
func NewFormSession(req SubmitQuoteRequest) *FormSession {
	s := &FormSession{
		Form: IntakeForm{
			Name:     req.Name,
			Company:  req.Company,
			Email:    req.Email,
			Phone:    req.Phone,
			Budget:   req.Budget,
			Timeline: req.Timeline,
			Message:  req.Message,
		},
	}
	for _, id := range req.Services {
		if !s.Selection.IsSelected(id) {
			s.Selection.Toggle(id)
		}
	}
	return s
}

// BeginSubmit marks a submission as in flight. Returns false when one is
// already outstanding; the caller must not start another.
func (s *FormSession) BeginSubmit() bool {
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit re-enables submission regardless of outcome
func (s *FormSession) EndSubmit() {
	s.submitting = false
}

// Submitting reports whether a submission is in flight
func (s *FormSession) Submitting() bool {
	return s.submitting
}

// ResetAfterSuccess clears the selection and every form field
func (s *FormSession) ResetAfterSuccess() {
	s.Form.Reset()
	s.Selection.Reset()
}
