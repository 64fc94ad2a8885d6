// Package validation decides whether a wizard step or a whole draft is complete.
// Every function here is pure: no I/O and no clock.
package validation

import (
	"strings"

	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
)

// Result lists what is still missing. Field names match the JSON payload keys.
type Result struct {
	OK            bool     `json:"ok"`
	MissingFields []string `json:"missingFields"`
}

func result(missing []string) Result {
	if missing == nil {
		missing = []string{}
	}

	return Result{OK: len(missing) == 0, MissingFields: missing}
}

// Err returns nil for a passing result and an *Error otherwise.
func (r Result) Err() error {
	if r.OK {
		return nil
	}

	return &Error{MissingFields: r.MissingFields}
}

// Error is returned when a step or submission is incomplete.
type Error struct {
	MissingFields []string
}

func (e *Error) Error() string {
	return "incomplete: missing " + strings.Join(e.MissingFields, ", ")
}

// ValidateStep checks the required fields of one step. A nil payload counts as an empty one.
// The documents step is checked against the requirement recorded in its own snapshot.
func ValidateStep(step draft.Step, payload draft.Payload) Result {
	switch step {
	case draft.StepPersonal:
		p, _ := payload.(draft.PersonalInfo)
		return result(personalMissing(p))
	case draft.StepEmployment:
		p, _ := payload.(draft.EmploymentInfo)
		return result(employmentMissing(p))
	case draft.StepRental:
		p, _ := payload.(draft.RentalInfo)
		return result(rentalMissing(p))
	case draft.StepDocuments:
		p, _ := payload.(draft.DocumentsInfo)
		required := []document.Category{document.CategoryGovernmentID, document.CategoryIncomeVerification}
		if p.StudentIDRequired {
			required = append(required, document.CategoryStudentID)
		}

		return result(MissingDocuments(required, p.Uploaded))
	case draft.StepReview:
		return result(nil)
	}

	return Result{OK: false, MissingFields: []string{string(step)}}
}

// ValidateSubmission aggregates every step check into one pass. The student ID
// requirement is derived from the current answers, and only finalized handles count.
func ValidateSubmission(d *draft.Draft, handles document.Handles) Result {
	var missing []string

	personal, _ := d.Personal()
	missing = append(missing, personalMissing(personal)...)

	employment, _ := d.Employment()
	missing = append(missing, employmentMissing(employment)...)

	if rental, ok := d.Rental(); ok {
		missing = append(missing, rentalMissing(rental)...)
	}

	missing = append(missing, MissingDocuments(RequiredDocuments(employment, personal), handles)...)

	return result(missing)
}

// RequiredDocuments lists the categories an applicant must provide.
func RequiredDocuments(employment draft.EmploymentInfo, personal draft.PersonalInfo) []document.Category {
	required := []document.Category{document.CategoryGovernmentID}

	if StudentIDRequired(employment, personal) {
		required = append(required, document.CategoryStudentID)
	}

	return append(required, document.CategoryIncomeVerification)
}

func StudentIDRequired(employment draft.EmploymentInfo, personal draft.PersonalInfo) bool {
	return employment.Status == draft.EmploymentStudent ||
		personal.CitizenshipStatus == draft.CitizenshipInternationalStudent
}

// MissingDocuments returns the required categories without a finalized handle, in the order given.
func MissingDocuments(required []document.Category, handles document.Handles) []string {
	var missing []string

	for _, c := range required {
		if !handles.Has(c) {
			missing = append(missing, string(c))
		}
	}

	return missing
}

func personalMissing(p draft.PersonalInfo) []string {
	var missing []string

	if blank(p.FirstName) {
		missing = append(missing, "firstName")
	}

	if blank(p.LastName) {
		missing = append(missing, "lastName")
	}

	return missing
}

func employmentMissing(p draft.EmploymentInfo) []string {
	if blank(string(p.Status)) {
		return []string{"status"}
	}

	return nil
}

func rentalMissing(p draft.RentalInfo) []string {
	var missing []string

	if blank(p.City) {
		missing = append(missing, "city")
	}

	if blank(p.MoveInDate) {
		missing = append(missing, "moveInDate")
	}

	return missing
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
