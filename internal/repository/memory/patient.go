package memory

import (
	"context"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
)

type patientRepository struct {
	s *Store
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	var err error
	r.s.write(func(st *memoryState) {
		if emailTaken(st, patient.Email, patient.ID) {
			err = apperror.Conflict("email", patient.Email)
			return
		}
		if patient.ID == 0 {
			st.lastPatientID++
			patient.ID = st.lastPatientID
		} else if patient.ID > st.lastPatientID {
			st.lastPatientID = patient.ID
		}
		now := r.s.nowFn()
		patient.CreatedAt, patient.UpdatedAt = now, now
		st.patients[patient.ID] = clonePatient(*patient)
	})
	return err
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	var out *entity.Patient
	r.s.read(func(st *memoryState) {
		if p, ok := st.patients[id]; ok {
			p = clonePatient(p)
			out = &p
		}
	})
	return out, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var out []entity.Patient
	r.s.read(func(st *memoryState) {
		for _, id := range sortedIDs(st.patients) {
			out = append(out, clonePatient(st.patients[id]))
		}
	})
	return out, nil
}

func (r *patientRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	r.s.read(func(st *memoryState) {
		exists = emailTaken(st, email, excludeID)
	})
	return exists, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	var err error
	r.s.write(func(st *memoryState) {
		if emailTaken(st, patient.Email, patient.ID) {
			err = apperror.Conflict("email", patient.Email)
			return
		}
		if existing, ok := st.patients[patient.ID]; ok && patient.CreatedAt.IsZero() {
			patient.CreatedAt = existing.CreatedAt
		}
		patient.UpdatedAt = r.s.nowFn()
		st.patients[patient.ID] = clonePatient(*patient)
	})
	return err
}

// Delete also drops the patient's appointments and bills, matching the
// ON DELETE CASCADE foreign keys of the SQL schema.
func (r *patientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var rows int64
	r.s.write(func(st *memoryState) {
		if _, ok := st.patients[id]; !ok {
			return
		}
		for aid, a := range st.appointments {
			if a.PatientID == id {
				delete(st.appointments, aid)
			}
		}
		for bid, b := range st.bills {
			if b.PatientID == id {
				delete(st.bills, bid)
			}
		}
		delete(st.patients, id)
		rows = 1
	})
	return rows, nil
}

func emailTaken(st *memoryState, email string, excludeID int64) bool {
	for id, p := range st.patients {
		if id != excludeID && p.Email == email {
			return true
		}
	}
	return false
}
