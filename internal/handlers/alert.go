package handlers

// AlertKindRestrictedDocument flags candidates holding a residency permit.
const AlertKindRestrictedDocument = "RESTRICTED_DOCUMENT"

const restrictedDocumentMessage = "Warning: this candidate holds a residency permit"

// Alert is the derived, never-persisted warning attached to API responses.
type Alert struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

// RestrictedDocumentAlert derives the alert payload from the owns-residency-
// permit flag. Pure presentation logic; the services never build alerts.
func RestrictedDocumentAlert(hasRestricted bool) *Alert {
	if !hasRestricted {
		return nil
	}
	return &Alert{
		Kind:    AlertKindRestrictedDocument,
		Message: restrictedDocumentMessage,
		Visible: true,
	}
}
