package converter

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)


func TestApplyDoctorRequest_BlankLicenseIsNil(t *testing.T) {
	blank := "   "
	years := 12
	doctor := DoctorRequestToEntity(&dto.DoctorRequest{
		Name:              " Dr. X ",
		Specialty:         "Cardiology",
		LicenseNumber:     &blank,
		YearsOfExperience: &years,
	})

	assert.Equal(t, "Dr. X", doctor.Name)
	assert.Nil(t, doctor.LicenseNumber)
	require.NotNil(t, doctor.YearsOfExperience)
	assert.Equal(t, 12, *doctor.YearsOfExperience)

	years = 40
	assert.Equal(t, 12, *doctor.YearsOfExperience)
}

func TestPatientRequestToEntity_DateOfBirth(t *testing.T) {
	p, err := PatientRequestToEntity(&dto.PatientRequest{Name: "Ann", Email: "ann@x.com", DateOfBirth: "1990-05-17"})
	require.NoError(t, err)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), *p.DateOfBirth)
	assert.Equal(t, "1990-05-17", PatientToResponse(p).DateOfBirth)

	_, err = PatientRequestToEntity(&dto.PatientRequest{Name: "Ann", Email: "ann@x.com", DateOfBirth: "17/05/1990"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestApplyAppointmentRequest(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	var a entity.Appointment

	err := ApplyAppointmentRequest(&a, &dto.AppointmentRequest{DateTime: dto.NewTimestamp(at)}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusScheduled, a.Status)
	assert.Equal(t, int64(1), a.PatientID)
	assert.Equal(t, int64(2), a.DoctorID)

	err = ApplyAppointmentRequest(&a, &dto.AppointmentRequest{DateTime: dto.NewTimestamp(at), Status: "scheduled"}, 1, 2)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))

	err = ApplyAppointmentRequest(&a, &dto.AppointmentRequest{}, 1, 2)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestApplyBillRequest(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		amount  string
		status  string
		wantErr bool
	}{
		{name: "defaults", amount: "100.00"},
		{name: "paid", amount: "0.01", status: "PAID"},
		{name: "zero amount", amount: "0", wantErr: true},
		{name: "negative amount", amount: "-5", wantErr: true},
		{name: "too precise", amount: "1.005", wantErr: true},
		{name: "trailing zeros ok", amount: "1.500", wantErr: false},
		{name: "too large", amount: "100000000", wantErr: true},
		{name: "unknown status", amount: "10", status: "REFUNDED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bill entity.Bill
			err := ApplyBillRequest(&bill, &dto.BillRequest{
				Amount: decimal.RequireFromString(tt.amount),
				Status: tt.status,
			}, 3, now)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now, bill.BillDate)
			assert.Equal(t, int64(3), bill.PatientID)
			if tt.status == "" {
				assert.Equal(t, entity.BillStatusPending, bill.Status)
			}
		})
	}
}

func TestResolver_ByID(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	patient := &entity.Patient{Name: "Ann", Email: "ann@x.com"}
	require.NoError(t, store.Patients().Create(ctx, patient))

	r := NewResolver(store.Patients(), store.Doctors())

	got, err := r.ResolvePatient(ctx, dto.PatientByID(patient.ID))
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	_, err = r.ResolveDoctor(ctx, dto.DoctorByID(5))
	var nf *apperror.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, entity.KindDoctor, nf.Kind)
	assert.Equal(t, int64(5), nf.ID)

	_, err = r.ResolvePatient(ctx, dto.PatientByID(0))
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestResolver_InlineDoesNotPersist(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	r := NewResolver(store.Patients(), store.Doctors())

	doctor, err := r.ResolveDoctor(ctx, dto.InlineDoctor(&dto.DoctorRequest{Name: "Dr. X", Specialty: "Cardiology"}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), doctor.ID)
	assert.Equal(t, "Dr. X", doctor.Name)

	all, err := store.Doctors().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = r.ResolvePatient(ctx, dto.PatientRef{Kind: dto.ReferenceInline})
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))

	_, err = r.ResolvePatient(ctx, dto.PatientRef{Kind: "embedded"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestResolver_ResponsesUseNames(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	patient := &entity.Patient{Name: "Ann", Email: "ann@x.com"}
	doctor := &entity.Doctor{Name: "Dr. X", Specialty: "Cardiology"}
	require.NoError(t, store.Patients().Create(ctx, patient))
	require.NoError(t, store.Doctors().Create(ctx, doctor))

	r := NewResolver(store.Patients(), store.Doctors())
	appointments := []entity.Appointment{
		{ID: 1, PatientID: patient.ID, DoctorID: doctor.ID, Status: entity.AppointmentStatusScheduled},
		{ID: 2, PatientID: patient.ID, DoctorID: 99, Status: entity.AppointmentStatusCancelled},
	}

	responses, err := r.AppointmentResponses(ctx, appointments)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "Ann", responses[0].PatientName)
	assert.Equal(t, "Dr. X", responses[0].DoctorName)
	assert.Equal(t, "", responses[1].DoctorName)

	bill, err := r.BillResponse(ctx, &entity.Bill{ID: 1, PatientID: patient.ID, Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Equal(t, "Ann", bill.PatientName)
}
