package memory

import (
	"context"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
)

type doctorRepository struct {
	s *Store
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	var err error
	r.s.write(func(st *memoryState) {
		if err = checkLicense(st, doctor); err != nil {
			return
		}
		if doctor.ID == 0 {
			st.lastDoctorID++
			doctor.ID = st.lastDoctorID
		} else if doctor.ID > st.lastDoctorID {
			st.lastDoctorID = doctor.ID
		}
		now := r.s.nowFn()
		doctor.CreatedAt, doctor.UpdatedAt = now, now
		st.doctors[doctor.ID] = cloneDoctor(*doctor)
	})
	return err
}

func (r *doctorRepository) FindByID(ctx context.Context, id int64) (*entity.Doctor, error) {
	var out *entity.Doctor
	r.s.read(func(st *memoryState) {
		if d, ok := st.doctors[id]; ok {
			d = cloneDoctor(d)
			out = &d
		}
	})
	return out, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return r.filter(func(entity.Doctor) bool { return true }), nil
}

func (r *doctorRepository) FindBySpecialty(ctx context.Context, specialty string) ([]entity.Doctor, error) {
	return r.filter(func(d entity.Doctor) bool { return d.Specialty == specialty }), nil
}

func (r *doctorRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID int64) (bool, error) {
	var exists bool
	r.s.read(func(st *memoryState) {
		exists = licenseTaken(st, licenseNumber, excludeID)
	})
	return exists, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	var err error
	r.s.write(func(st *memoryState) {
		if err = checkLicense(st, doctor); err != nil {
			return
		}
		if existing, ok := st.doctors[doctor.ID]; ok && doctor.CreatedAt.IsZero() {
			doctor.CreatedAt = existing.CreatedAt
		}
		doctor.UpdatedAt = r.s.nowFn()
		st.doctors[doctor.ID] = cloneDoctor(*doctor)
	})
	return err
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var (
		rows int64
		err  error
	)
	r.s.write(func(st *memoryState) {
		if _, ok := st.doctors[id]; !ok {
			return
		}
		for _, a := range st.appointments {
			if a.DoctorID == id {
				err = apperror.ConflictWithReason("doctor", id, "is still referenced by appointments")
				return
			}
		}
		delete(st.doctors, id)
		rows = 1
	})
	return rows, err
}

func (r *doctorRepository) filter(keep func(entity.Doctor) bool) []entity.Doctor {
	var out []entity.Doctor
	r.s.read(func(st *memoryState) {
		for _, id := range sortedIDs(st.doctors) {
			if d := st.doctors[id]; keep(d) {
				out = append(out, cloneDoctor(d))
			}
		}
	})
	return out
}

func checkLicense(st *memoryState, doctor *entity.Doctor) error {
	if doctor.HasLicense() && licenseTaken(st, *doctor.LicenseNumber, doctor.ID) {
		return apperror.Conflict("licenseNumber", *doctor.LicenseNumber)
	}
	return nil
}

func licenseTaken(st *memoryState, licenseNumber string, excludeID int64) bool {
	for id, d := range st.doctors {
		if id != excludeID && d.LicenseNumber != nil && *d.LicenseNumber == licenseNumber {
			return true
		}
	}
	return false
}
