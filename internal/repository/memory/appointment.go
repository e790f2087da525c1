package memory

import (
	"context"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
)

type appointmentRepository struct {
	s *Store
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	var err error
	r.s.write(func(st *memoryState) {
		if err = checkAppointmentParents(st, appointment); err != nil {
			return
		}
		if appointment.ID == 0 {
			st.lastAppointmentID++
			appointment.ID = st.lastAppointmentID
		} else if appointment.ID > st.lastAppointmentID {
			st.lastAppointmentID = appointment.ID
		}
		now := r.s.nowFn()
		appointment.CreatedAt, appointment.UpdatedAt = now, now
		st.appointments[appointment.ID] = *appointment
	})
	return err
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	var out *entity.Appointment
	r.s.read(func(st *memoryState) {
		if a, ok := st.appointments[id]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return r.filter(func(entity.Appointment) bool { return true }), nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *appointmentRepository) FindByStatus(ctx context.Context, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool { return a.Status == status }), nil
}

func (r *appointmentRepository) CountByDoctorID(ctx context.Context, doctorID int64) (int64, error) {
	return int64(len(r.filter(func(a entity.Appointment) bool { return a.DoctorID == doctorID }))), nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	var err error
	r.s.write(func(st *memoryState) {
		if err = checkAppointmentParents(st, appointment); err != nil {
			return
		}
		if existing, ok := st.appointments[appointment.ID]; ok && appointment.CreatedAt.IsZero() {
			appointment.CreatedAt = existing.CreatedAt
		}
		appointment.UpdatedAt = r.s.nowFn()
		st.appointments[appointment.ID] = *appointment
	})
	return err
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var rows int64
	r.s.write(func(st *memoryState) {
		if _, ok := st.appointments[id]; ok {
			delete(st.appointments, id)
			rows = 1
		}
	})
	return rows, nil
}

func (r *appointmentRepository) filter(keep func(entity.Appointment) bool) []entity.Appointment {
	var out []entity.Appointment
	r.s.read(func(st *memoryState) {
		for _, id := range sortedIDs(st.appointments) {
			if a := st.appointments[id]; keep(a) {
				out = append(out, a)
			}
		}
	})
	return out
}

func checkAppointmentParents(st *memoryState, appointment *entity.Appointment) error {
	if _, ok := st.patients[appointment.PatientID]; !ok {
		return apperror.NotFound(entity.KindPatient, appointment.PatientID)
	}
	if _, ok := st.doctors[appointment.DoctorID]; !ok {
		return apperror.NotFound(entity.KindDoctor, appointment.DoctorID)
	}
	return nil
}
