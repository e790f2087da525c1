package memory

import (
	"time"

	"hospital-management/internal/domain/entity"
)

func cloneDoctor(d entity.Doctor) entity.Doctor {
	if d.LicenseNumber != nil {
		v := *d.LicenseNumber
		d.LicenseNumber = &v
	}
	if d.YearsOfExperience != nil {
		v := *d.YearsOfExperience
		d.YearsOfExperience = &v
	}
	return d
}

func clonePatient(p entity.Patient) entity.Patient {
	p.DateOfBirth = cloneTime(p.DateOfBirth)
	return p
}

func cloneBill(b entity.Bill) entity.Bill {
	b.DueDate = cloneTime(b.DueDate)
	b.PaymentDate = cloneTime(b.PaymentDate)
	return b
}

func cloneAuditLog(l entity.AuditLog) entity.AuditLog {
	if l.Metadata != nil {
		md := make(entity.JSON, len(l.Metadata))
		for k, v := range l.Metadata {
			md[k] = v
		}
		l.Metadata = md
	}
	return l
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
