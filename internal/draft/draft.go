package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/cosigner/internal/document"
)

// Step names one screen of the application wizard.
type Step string

const (
	StepPersonal   Step = "personal"
	StepEmployment Step = "employment"
	StepRental     Step = "rental"
	StepDocuments  Step = "documents"
	StepReview     Step = "review"
)

// Steps lists the persisted wizard steps in the order they are shown.
var Steps = []Step{StepPersonal, StepEmployment, StepRental, StepDocuments, StepReview}

func (s Step) Valid() bool {
	switch s {
	case StepPersonal, StepEmployment, StepRental, StepDocuments, StepReview:
		return true
	}

	return false
}

var (
	ErrUnknownStep  = errors.New("unknown step")
	ErrStepMismatch = errors.New("payload does not belong to step")
)

// Payload is one step's answers. Implementations are PersonalInfo, EmploymentInfo,
// RentalInfo, DocumentsInfo and ReviewInfo.
type Payload interface {
	Step() Step
}

type CitizenshipStatus string

const (
	CitizenshipCitizen              CitizenshipStatus = "citizen"
	CitizenshipPermanentResident    CitizenshipStatus = "permanent_resident"
	CitizenshipInternationalStudent CitizenshipStatus = "international_student"
	CitizenshipOther                CitizenshipStatus = "other"
)

type PersonalInfo struct {
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Phone             string            `json:"phone,omitempty"`
	DateOfBirth       string            `json:"dateOfBirth,omitempty"`
	CitizenshipStatus CitizenshipStatus `json:"citizenshipStatus,omitempty"`
	CurrentAddress    string            `json:"currentAddress,omitempty"`
}

func (PersonalInfo) Step() Step { return StepPersonal }

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentSelfEmployed EmploymentStatus = "self_employed"
	EmploymentStudent      EmploymentStatus = "student"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentRetired      EmploymentStatus = "retired"
)

type EmploymentInfo struct {
	Status       EmploymentStatus `json:"status"`
	Employer     string           `json:"employer,omitempty"`
	JobTitle     string           `json:"jobTitle,omitempty"`
	School       string           `json:"school,omitempty"`
	AnnualIncome string           `json:"annualIncome,omitempty"`
}

func (EmploymentInfo) Step() Step { return StepEmployment }

type RentalInfo struct {
	City            string `json:"city"`
	MoveInDate      string `json:"moveInDate"`
	MonthlyRent     string `json:"monthlyRent,omitempty"`
	PropertyAddress string `json:"propertyAddress,omitempty"`
	LandlordName    string `json:"landlordName,omitempty"`
}

func (RentalInfo) Step() Step { return StepRental }

// DocumentsInfo is the documents screen as the applicant last saw it.
// Submission never trusts this snapshot; it re-reads the handle store.
type DocumentsInfo struct {
	Uploaded          document.Handles `json:"uploaded,omitempty"`
	StudentIDRequired bool             `json:"studentIdRequired"`
}

func (DocumentsInfo) Step() Step { return StepDocuments }

type ReviewInfo struct {
	Confirmed bool   `json:"confirmed"`
	Comments  string `json:"comments,omitempty"`
}

func (ReviewInfo) Step() Step { return StepReview }

// Draft is an applicant's in-progress answers.
type Draft struct {
	UserID string
	Steps  map[Step]Payload
	// Unsynced holds answers accepted into the cache that the durable store has not confirmed yet.
	Unsynced  map[Step]Payload
	UpdatedAt time.Time
}

func newDraft(userID string) *Draft {
	return &Draft{
		UserID:   userID,
		Steps:    map[Step]Payload{},
		Unsynced: map[Step]Payload{},
	}
}

func (d *Draft) Personal() (PersonalInfo, bool) {
	if d == nil {
		return PersonalInfo{}, false
	}

	p, ok := d.Steps[StepPersonal].(PersonalInfo)

	return p, ok
}

func (d *Draft) Employment() (EmploymentInfo, bool) {
	if d == nil {
		return EmploymentInfo{}, false
	}

	p, ok := d.Steps[StepEmployment].(EmploymentInfo)

	return p, ok
}

func (d *Draft) Rental() (RentalInfo, bool) {
	if d == nil {
		return RentalInfo{}, false
	}

	p, ok := d.Steps[StepRental].(RentalInfo)

	return p, ok
}

// Decode parses a stored payload into the concrete type for step.
func Decode(step Step, raw []byte) (Payload, error) {
	var (
		p   Payload
		err error
	)

	switch step {
	case StepPersonal:
		var v PersonalInfo
		err = json.Unmarshal(raw, &v)
		p = v
	case StepEmployment:
		var v EmploymentInfo
		err = json.Unmarshal(raw, &v)
		p = v
	case StepRental:
		var v RentalInfo
		err = json.Unmarshal(raw, &v)
		p = v
	case StepDocuments:
		var v DocumentsInfo
		err = json.Unmarshal(raw, &v)
		p = v
	case StepReview:
		var v ReviewInfo
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", step, err)
	}

	return p, nil
}

func encode(p Payload) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", p.Step(), err)
	}

	return raw, nil
}
