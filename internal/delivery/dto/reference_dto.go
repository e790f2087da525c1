package dto

import (
	"bytes"
	"encoding/json"
)

// ReferenceKind selects how a parent record is supplied with a request.
type ReferenceKind string

const (
	// ReferenceByID points at an existing record.
	ReferenceByID ReferenceKind = "id"
	// ReferenceInline carries a new record that is created with the request.
	ReferenceInline ReferenceKind = "inline"
)

type PatientRef struct {
	Kind   ReferenceKind   `json:"kind" validate:"required,oneof=id inline"`
	ID     int64           `json:"id,omitempty" validate:"omitempty,gt=0"`
	Inline *PatientRequest `json:"patient,omitempty"`
}

type DoctorRef struct {
	Kind   ReferenceKind  `json:"kind" validate:"required,oneof=id inline"`
	ID     int64          `json:"id,omitempty" validate:"omitempty,gt=0"`
	Inline *DoctorRequest `json:"doctor,omitempty"`
}

func PatientByID(id int64) PatientRef {
	return PatientRef{Kind: ReferenceByID, ID: id}
}

func InlinePatient(req *PatientRequest) PatientRef {
	return PatientRef{Kind: ReferenceInline, Inline: req}
}

func DoctorByID(id int64) DoctorRef {
	return DoctorRef{Kind: ReferenceByID, ID: id}
}

func InlineDoctor(req *DoctorRequest) DoctorRef {
	return DoctorRef{Kind: ReferenceInline, Inline: req}
}

// UnmarshalJSON also accepts a bare number as shorthand for a by-id reference.
func (r *PatientRef) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*r = PatientByID(id)
		return nil
	}
	type plain PatientRef
	return json.Unmarshal(data, (*plain)(r))
}

func (r *DoctorRef) UnmarshalJSON(data []byte) error {
	if id, ok := bareID(data); ok {
		*r = DoctorByID(id)
		return nil
	}
	type plain DoctorRef
	return json.Unmarshal(data, (*plain)(r))
}

func bareID(data []byte) (int64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '{' {
		return 0, false
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return 0, false
	}
	return id, true
}
