package memory

import (
	"context"

	"hospital-management/internal/domain/apperror"
	"hospital-management/internal/domain/entity"
)

type billRepository struct {
	s *Store
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	var err error
	r.s.write(func(st *memoryState) {
		if _, ok := st.patients[bill.PatientID]; !ok {
			err = apperror.NotFound(entity.KindPatient, bill.PatientID)
			return
		}
		if bill.ID == 0 {
			st.lastBillID++
			bill.ID = st.lastBillID
		} else if bill.ID > st.lastBillID {
			st.lastBillID = bill.ID
		}
		now := r.s.nowFn()
		bill.CreatedAt, bill.UpdatedAt = now, now
		st.bills[bill.ID] = cloneBill(*bill)
	})
	return err
}

func (r *billRepository) FindByID(ctx context.Context, id int64) (*entity.Bill, error) {
	var out *entity.Bill
	r.s.read(func(st *memoryState) {
		if b, ok := st.bills[id]; ok {
			b = cloneBill(b)
			out = &b
		}
	})
	return out, nil
}

func (r *billRepository) FindAll(ctx context.Context) ([]entity.Bill, error) {
	return r.filter(func(entity.Bill) bool { return true }), nil
}

func (r *billRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Bill, error) {
	return r.filter(func(b entity.Bill) bool { return b.PatientID == patientID }), nil
}

func (r *billRepository) FindByStatus(ctx context.Context, status entity.BillStatus) ([]entity.Bill, error) {
	return r.filter(func(b entity.Bill) bool { return b.Status == status }), nil
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	var err error
	r.s.write(func(st *memoryState) {
		if _, ok := st.patients[bill.PatientID]; !ok {
			err = apperror.NotFound(entity.KindPatient, bill.PatientID)
			return
		}
		if existing, ok := st.bills[bill.ID]; ok && bill.CreatedAt.IsZero() {
			bill.CreatedAt = existing.CreatedAt
		}
		bill.UpdatedAt = r.s.nowFn()
		st.bills[bill.ID] = cloneBill(*bill)
	})
	return err
}

func (r *billRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var rows int64
	r.s.write(func(st *memoryState) {
		if _, ok := st.bills[id]; ok {
			delete(st.bills, id)
			rows = 1
		}
	})
	return rows, nil
}

func (r *billRepository) filter(keep func(entity.Bill) bool) []entity.Bill {
	var out []entity.Bill
	r.s.read(func(st *memoryState) {
		for _, id := range sortedIDs(st.bills) {
			if b := st.bills[id]; keep(b) {
				out = append(out, cloneBill(b))
			}
		}
	})
	return out
}
