package repository

import "context"

// Store groups the repositories of one backing database. Repositories
// obtained from the Store passed to a Transaction callback run inside
// that transaction; the transaction commits when fn returns nil and
// rolls back otherwise.
type Store interface {
	Doctors() DoctorRepository
	Patients() PatientRepository
	Appointments() AppointmentRepository
	Bills() BillRepository
	AuditLogs() AuditLogRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
