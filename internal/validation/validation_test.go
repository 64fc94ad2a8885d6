package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/validation"
)

func finalized(c document.Category) document.Handle {
	return document.Handle{Category: c, ProviderID: "h-" + string(c), Scanned: true}
}

func handles(cs ...document.Category) document.Handles {
	hs := document.Handles{}
	for _, c := range cs {
		hs[c] = finalized(c)
	}

	return hs
}

func newDraft(payloads ...draft.Payload) *draft.Draft {
	d := &draft.Draft{UserID: "user-1", Steps: map[draft.Step]draft.Payload{}}
	for _, p := range payloads {
		d.Steps[p.Step()] = p
	}

	return d
}

func TestValidateStep(t *testing.T) {
	type testCase struct {
		name        string
		step        draft.Step
		payload     draft.Payload
		wantOK      bool
		wantMissing []string
	}

	tests := []testCase{
		{
			name:    "PersonalComplete",
			step:    draft.StepPersonal,
			payload: draft.PersonalInfo{FirstName: "A", LastName: "B"},
			wantOK:  true,
		},
		{
			name:        "PersonalBlankLastName",
			step:        draft.StepPersonal,
			payload:     draft.PersonalInfo{FirstName: "A", LastName: "  "},
			wantMissing: []string{"lastName"},
		},
		{
			name:        "PersonalNil",
			step:        draft.StepPersonal,
			payload:     nil,
			wantMissing: []string{"firstName", "lastName"},
		},
		{
			name:    "EmploymentComplete",
			step:    draft.StepEmployment,
			payload: draft.EmploymentInfo{Status: draft.EmploymentStudent},
			wantOK:  true,
		},
		{
			name:        "EmploymentMissingStatus",
			step:        draft.StepEmployment,
			payload:     draft.EmploymentInfo{Employer: "Acme"},
			wantMissing: []string{"status"},
		},
		{
			name:        "RentalMissingBoth",
			step:        draft.StepRental,
			payload:     draft.RentalInfo{MonthlyRent: "900"},
			wantMissing: []string{"city", "moveInDate"},
		},
		{
			name: "DocumentsStudentRequired",
			step: draft.StepDocuments,
			payload: draft.DocumentsInfo{
				Uploaded:          handles(document.CategoryGovernmentID, document.CategoryIncomeVerification),
				StudentIDRequired: true,
			},
			wantMissing: []string{"studentId"},
		},
		{
			name: "DocumentsUnscannedDoesNotCount",
			step: draft.StepDocuments,
			payload: draft.DocumentsInfo{
				Uploaded: document.Handles{
					document.CategoryGovernmentID:       {ProviderID: "h-1", Scanned: false},
					document.CategoryIncomeVerification: finalized(document.CategoryIncomeVerification),
				},
			},
			wantMissing: []string{"governmentId"},
		},
		{
			name:    "ReviewHasNoRequiredFields",
			step:    draft.StepReview,
			payload: draft.ReviewInfo{},
			wantOK:  true,
		},
		{
			name:        "UnknownStep",
			step:        draft.Step("pets"),
			wantMissing: []string{"pets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.ValidateStep(tt.step, tt.payload)
			assert.Equal(t, tt.wantOK, got.OK)

			if tt.wantOK {
				assert.Empty(t, got.MissingFields)
				assert.NoError(t, got.Err())
				return
			}

			assert.Equal(t, tt.wantMissing, got.MissingFields)

			var verr *validation.Error
			require.ErrorAs(t, got.Err(), &verr)
			assert.Equal(t, tt.wantMissing, verr.MissingFields)
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	personal := draft.PersonalInfo{FirstName: "A", LastName: "B"}
	student := draft.EmploymentInfo{Status: draft.EmploymentStudent}
	employed := draft.EmploymentInfo{Status: draft.EmploymentEmployed}

	type testCase struct {
		name        string
		draft       *draft.Draft
		handles     document.Handles
		wantMissing []string
	}

	tests := []testCase{
		{
			name:        "StudentWithoutStudentID",
			draft:       newDraft(personal, student),
			handles:     handles(document.CategoryGovernmentID, document.CategoryIncomeVerification),
			wantMissing: []string{"studentId"},
		},
		{
			name:    "StudentWithStudentID",
			draft:   newDraft(personal, student),
			handles: handles(document.CategoryGovernmentID, document.CategoryStudentID, document.CategoryIncomeVerification),
		},
		{
			name:    "EmployedNeedsNoStudentID",
			draft:   newDraft(personal, employed),
			handles: handles(document.CategoryGovernmentID, document.CategoryIncomeVerification),
		},
		{
			name: "InternationalStudentCitizenshipNeedsStudentID",
			draft: newDraft(
				draft.PersonalInfo{FirstName: "A", LastName: "B", CitizenshipStatus: draft.CitizenshipInternationalStudent},
				employed,
			),
			handles:     handles(document.CategoryGovernmentID, document.CategoryIncomeVerification),
			wantMissing: []string{"studentId"},
		},
		{
			name:        "EmptyDraft",
			draft:       newDraft(),
			handles:     document.Handles{},
			wantMissing: []string{"firstName", "lastName", "status", "governmentId", "incomeVerification"},
		},
		{
			name:        "IncompleteRentalCounts",
			draft:       newDraft(personal, employed, draft.RentalInfo{City: "Porto"}),
			handles:     handles(document.CategoryGovernmentID, document.CategoryIncomeVerification),
			wantMissing: []string{"moveInDate"},
		},
		{
			name:        "StaleDocumentsSnapshotIgnored",
			draft:       newDraft(personal, student, draft.DocumentsInfo{StudentIDRequired: false, Uploaded: handles(document.CategoryGovernmentID, document.CategoryIncomeVerification)}),
			handles:     handles(document.CategoryGovernmentID, document.CategoryIncomeVerification),
			wantMissing: []string{"studentId"},
		},
		{
			name:        "NilDraft",
			draft:       nil,
			handles:     nil,
			wantMissing: []string{"firstName", "lastName", "status", "governmentId", "incomeVerification"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.ValidateSubmission(tt.draft, tt.handles)

			if len(tt.wantMissing) == 0 {
				assert.True(t, got.OK)
				assert.Empty(t, got.MissingFields)
				return
			}

			assert.False(t, got.OK)
			assert.Equal(t, tt.wantMissing, got.MissingFields)
		})
	}
}

func TestValidateSubmission_StudentIDFlip(t *testing.T) {
	d := newDraft(draft.PersonalInfo{FirstName: "A", LastName: "B"}, draft.EmploymentInfo{Status: draft.EmploymentStudent})
	hs := handles(document.CategoryGovernmentID, document.CategoryIncomeVerification)

	got := validation.ValidateSubmission(d, hs)
	require.False(t, got.OK)
	assert.Equal(t, []string{"studentId"}, got.MissingFields)

	hs[document.CategoryStudentID] = finalized(document.CategoryStudentID)
	assert.True(t, validation.ValidateSubmission(d, hs).OK)

	delete(hs, document.CategoryStudentID)
	got = validation.ValidateSubmission(d, hs)
	assert.False(t, got.OK)
	assert.Equal(t, []string{"studentId"}, got.MissingFields)

	// changing employment afterwards lifts the requirement
	d.Steps[draft.StepEmployment] = draft.EmploymentInfo{Status: draft.EmploymentEmployed}
	assert.True(t, validation.ValidateSubmission(d, hs).OK)
}

func TestRequiredDocuments(t *testing.T) {
	got := validation.RequiredDocuments(draft.EmploymentInfo{Status: draft.EmploymentStudent}, draft.PersonalInfo{})
	assert.Equal(t, []document.Category{
		document.CategoryGovernmentID,
		document.CategoryStudentID,
		document.CategoryIncomeVerification,
	}, got)

	got = validation.RequiredDocuments(draft.EmploymentInfo{Status: draft.EmploymentRetired}, draft.PersonalInfo{})
	assert.Equal(t, []document.Category{document.CategoryGovernmentID, document.CategoryIncomeVerification}, got)
}
