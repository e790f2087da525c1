package converter

import (
	"context"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
)

// Resolver turns parent references into entities and looks up display
// names. It only reads from the repositories; persisting an inline parent
// is left to the caller. A Resolver caches what it loads and is meant to
// live for a single operation.
type Resolver struct {
	patients repository.PatientRepository
	doctors  repository.DoctorRepository

	patientCache map[int64]*entity.Patient
	doctorCache  map[int64]*entity.Doctor
}

func NewResolver(patients repository.PatientRepository, doctors repository.DoctorRepository) *Resolver {
	return &Resolver{
		patients:     patients,
		doctors:      doctors,
		patientCache: make(map[int64]*entity.Patient),
		doctorCache:  make(map[int64]*entity.Doctor),
	}
}

// ResolvePatient loads the referenced patient, or builds a new unsaved one
// (ID 0) for an inline reference.
func (r *Resolver) ResolvePatient(ctx context.Context, ref dto.PatientRef) (*entity.Patient, error) {
	switch ref.Kind {
	case dto.ReferenceByID:
		if ref.ID <= 0 {
			return nil, apperror.InvalidArgument("patient.id", "must be a positive id")
		}
		patient, err := r.Patient(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, apperror.NotFound(entity.KindPatient, ref.ID)
		}
		return patient, nil
	case dto.ReferenceInline:
		if ref.Inline == nil {
			return nil, apperror.InvalidArgument("patient", "inline reference requires a patient payload")
		}
		return PatientRequestToEntity(ref.Inline)
	default:
		return nil, apperror.InvalidArgument("patient.kind", "must be id or inline")
	}
}

func (r *Resolver) ResolveDoctor(ctx context.Context, ref dto.DoctorRef) (*entity.Doctor, error) {
	switch ref.Kind {
	case dto.ReferenceByID:
		if ref.ID <= 0 {
			return nil, apperror.InvalidArgument("doctor.id", "must be a positive id")
		}
		doctor, err := r.Doctor(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, apperror.NotFound(entity.KindDoctor, ref.ID)
		}
		return doctor, nil
	case dto.ReferenceInline:
		if ref.Inline == nil {
			return nil, apperror.InvalidArgument("doctor", "inline reference requires a doctor payload")
		}
		return DoctorRequestToEntity(ref.Inline), nil
	default:
		return nil, apperror.InvalidArgument("doctor.kind", "must be id or inline")
	}
}

// Patient returns the cached or stored patient, nil if absent.
func (r *Resolver) Patient(ctx context.Context, id int64) (*entity.Patient, error) {
	if p, ok := r.patientCache[id]; ok {
		return p, nil
	}
	p, err := r.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.patientCache[id] = p
	return p, nil
}

func (r *Resolver) Doctor(ctx context.Context, id int64) (*entity.Doctor, error) {
	if d, ok := r.doctorCache[id]; ok {
		return d, nil
	}
	d, err := r.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.doctorCache[id] = d
	return d, nil
}

// Remember seeds the cache, e.g. with a parent created inline.
func (r *Resolver) Remember(patient *entity.Patient, doctor *entity.Doctor) {
	if patient != nil && patient.ID > 0 {
		r.patientCache[patient.ID] = patient
	}
	if doctor != nil && doctor.ID > 0 {
		r.doctorCache[doctor.ID] = doctor
	}
}

// AppointmentResponse fills in the owner names. Missing owners give empty names.
func (r *Resolver) AppointmentResponse(ctx context.Context, appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	patient, err := r.Patient(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := r.Doctor(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	return AppointmentToResponse(appointment, patient, doctor), nil
}

func (r *Resolver) AppointmentResponses(ctx context.Context, appointments []entity.Appointment) ([]dto.AppointmentResponse, error) {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp, err := r.AppointmentResponse(ctx, &appointments[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}

func (r *Resolver) BillResponse(ctx context.Context, bill *entity.Bill) (*dto.BillResponse, error) {
	patient, err := r.Patient(ctx, bill.PatientID)
	if err != nil {
		return nil, err
	}
	return BillToResponse(bill, patient), nil
}

func (r *Resolver) BillResponses(ctx context.Context, bills []entity.Bill) ([]dto.BillResponse, error) {
	responses := make([]dto.BillResponse, len(bills))
	for i := range bills {
		resp, err := r.BillResponse(ctx, &bills[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}
