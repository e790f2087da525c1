// Package memory provides a process-lifetime Store kept entirely in maps.
// It backs the service when STORE_DRIVER=memory and in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"
)

type memoryState struct {
	doctors      map[int64]entity.Doctor
	patients     map[int64]entity.Patient
	appointments map[int64]entity.Appointment
	bills        map[int64]entity.Bill
	auditLogs    map[int64]entity.AuditLog

	lastDoctorID      int64
	lastPatientID     int64
	lastAppointmentID int64
	lastBillID        int64
	lastAuditLogID    int64
}

func newMemoryState() memoryState {
	return memoryState{
		doctors:      make(map[int64]entity.Doctor),
		patients:     make(map[int64]entity.Patient),
		appointments: make(map[int64]entity.Appointment),
		bills:        make(map[int64]entity.Bill),
		auditLogs:    make(map[int64]entity.AuditLog),
	}
}

func (s memoryState) clone() memoryState {
	cloned := newMemoryState()
	for k, v := range s.doctors {
		cloned.doctors[k] = cloneDoctor(v)
	}
	for k, v := range s.patients {
		cloned.patients[k] = clonePatient(v)
	}
	for k, v := range s.appointments {
		cloned.appointments[k] = v
	}
	for k, v := range s.bills {
		cloned.bills[k] = cloneBill(v)
	}
	for k, v := range s.auditLogs {
		cloned.auditLogs[k] = cloneAuditLog(v)
	}
	cloned.lastDoctorID = s.lastDoctorID
	cloned.lastPatientID = s.lastPatientID
	cloned.lastAppointmentID = s.lastAppointmentID
	cloned.lastBillID = s.lastBillID
	cloned.lastAuditLogID = s.lastAuditLogID
	return cloned
}

// Store is safe for concurrent use. A Transaction holds the write lock
// for its whole duration and works on a copy of the state that is only
// swapped in when the callback succeeds.
type Store struct {
	mu    *sync.RWMutex
	state *memoryState
	inTx  bool
	nowFn func() time.Time
}

func NewStore() *Store {
	state := newMemoryState()
	return &Store{
		mu:    &sync.RWMutex{},
		state: &state,
		nowFn: time.Now,
	}
}

func (s *Store) Doctors() domainRepo.DoctorRepository           { return &doctorRepository{s: s} }
func (s *Store) Patients() domainRepo.PatientRepository         { return &patientRepository{s: s} }
func (s *Store) Appointments() domainRepo.AppointmentRepository { return &appointmentRepository{s: s} }
func (s *Store) Bills() domainRepo.BillRepository               { return &billRepository{s: s} }
func (s *Store) AuditLogs() domainRepo.AuditLogRepository       { return &auditLogRepository{s: s} }

func (s *Store) Transaction(ctx context.Context, fn func(tx domainRepo.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	tx := &Store{mu: s.mu, state: &working, inTx: true, nowFn: s.nowFn}
	if err := fn(tx); err != nil {
		return err
	}
	*s.state = working
	return nil
}

// Close drops all records.
func (s *Store) Close() error {
	s.write(func(st *memoryState) {
		*st = newMemoryState()
	})
	return nil
}

func (s *Store) read(fn func(st *memoryState)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.state)
}

func (s *Store) write(fn func(st *memoryState)) {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn(s.state)
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var _ domainRepo.Store = (*Store)(nil)
