package entity

// Entity kinds used in error messages and audit metadata.
const (
	KindDoctor      = "Doctor"
	KindPatient     = "Patient"
	KindAppointment = "Appointment"
	KindBill        = "Bill"
	KindAuditLog    = "AuditLog"
)
