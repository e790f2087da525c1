package usecase

import (
	"context"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"
)

func requireID(field string, id int64) error {
	if id <= 0 {
		return apperror.InvalidArgument(field, "must be a positive id")
	}
	return nil
}

func validateDoctor(doctor *entity.Doctor) error {
	if doctor.Name == "" {
		return apperror.InvalidArgument("name", "is required")
	}
	if doctor.Specialty == "" {
		return apperror.InvalidArgument("specialty", "is required")
	}
	if y := doctor.YearsOfExperience; y != nil && (*y < 0 || *y > 70) {
		return apperror.InvalidArgument("yearsOfExperience", "must be between 0 and 70")
	}
	return nil
}

func validatePatient(patient *entity.Patient) error {
	if patient.Name == "" {
		return apperror.InvalidArgument("name", "is required")
	}
	if patient.Email == "" {
		return apperror.InvalidArgument("email", "is required")
	}
	return nil
}

func doctorLockKey(doctor *entity.Doctor) string {
	if doctor == nil || !doctor.HasLicense() {
		return ""
	}
	return service.LicenseLockKey(*doctor.LicenseNumber)
}

func patientLockKey(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return service.EmailLockKey(email)
}

func patientRefLockKey(ref dto.PatientRef) string {
	if ref.Kind != dto.ReferenceInline || ref.Inline == nil {
		return ""
	}
	return patientLockKey(ref.Inline.Email)
}

func doctorRefLockKey(ref dto.DoctorRef) string {
	if ref.Kind != dto.ReferenceInline || ref.Inline == nil {
		return ""
	}
	return doctorLockKey(converter.DoctorRequestToEntity(ref.Inline))
}

// insertDoctor checks license uniqueness, stores doctor and audits it.
// Callers hold the license lock and run inside tx.
func insertDoctor(ctx context.Context, tx repository.Store, audit service.AuditService, doctor *entity.Doctor) error {
	if err := validateDoctor(doctor); err != nil {
		return err
	}
	if err := checkLicenseAvailable(ctx, tx, doctor); err != nil {
		return err
	}
	if err := tx.Doctors().Create(ctx, doctor); err != nil {
		return err
	}
	return audit.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, entity.KindDoctor, doctor.ID, converter.DoctorToResponse(doctor))
}

func checkLicenseAvailable(ctx context.Context, tx repository.Store, doctor *entity.Doctor) error {
	if !doctor.HasLicense() {
		return nil
	}
	exists, err := tx.Doctors().ExistsByLicenseNumber(ctx, *doctor.LicenseNumber, doctor.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("licenseNumber", *doctor.LicenseNumber)
	}
	return nil
}

// insertPatient is the patient counterpart of insertDoctor.
func insertPatient(ctx context.Context, tx repository.Store, audit service.AuditService, patient *entity.Patient) error {
	if err := validatePatient(patient); err != nil {
		return err
	}
	if err := checkEmailAvailable(ctx, tx, patient); err != nil {
		return err
	}
	if err := tx.Patients().Create(ctx, patient); err != nil {
		return err
	}
	return audit.LogCreate(ctx, tx, entity.AuditActionPatientCreate, entity.KindPatient, patient.ID, converter.PatientToResponse(patient))
}

func checkEmailAvailable(ctx context.Context, tx repository.Store, patient *entity.Patient) error {
	exists, err := tx.Patients().ExistsByEmail(ctx, patient.Email, patient.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("email", patient.Email)
	}
	return nil
}

// resolveParents loads or creates the patient and doctor an appointment
// points at. Inline parents are persisted in tx.
func resolveParents(ctx context.Context, tx repository.Store, audit service.AuditService, resolver *converter.Resolver, patientRef dto.PatientRef, doctorRef dto.DoctorRef) (*entity.Patient, *entity.Doctor, error) {
	patient, err := resolvePatient(ctx, tx, audit, resolver, patientRef)
	if err != nil {
		return nil, nil, err
	}
	doctor, err := resolver.ResolveDoctor(ctx, doctorRef)
	if err != nil {
		return nil, nil, err
	}
	if doctor.ID == 0 {
		if err := insertDoctor(ctx, tx, audit, doctor); err != nil {
			return nil, nil, err
		}
		resolver.Remember(nil, doctor)
	}
	return patient, doctor, nil
}

func resolvePatient(ctx context.Context, tx repository.Store, audit service.AuditService, resolver *converter.Resolver, ref dto.PatientRef) (*entity.Patient, error) {
	patient, err := resolver.ResolvePatient(ctx, ref)
	if err != nil {
		return nil, err
	}
	if patient.ID == 0 {
		if err := insertPatient(ctx, tx, audit, patient); err != nil {
			return nil, err
		}
		resolver.Remember(patient, nil)
	}
	return patient, nil
}
