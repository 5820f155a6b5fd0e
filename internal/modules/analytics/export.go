package analytics

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"rentadmin/internal/repository"
)

// ExportReservationsCSV streams reservations as CSV, optionally limited
// to those overlapping the [from, to] window.
func (s *Service) ExportReservationsCSV(ctx context.Context, w io.Writer, from, to *time.Time) error {
	reservations, err := s.reservations.List(ctx, repository.ReservationFilters{From: from, To: to})
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "property_id", "guest_name", "start_date", "end_date", "origin", "status", "total_price"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range reservations {
		r := &reservations[i]
		record := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.PropertyID, 10),
			r.GuestName,
			r.StartDate.Format("2006-01-02"),
			r.EndDate.Format("2006-01-02"),
			string(r.Origin),
			string(r.Status),
			strconv.FormatFloat(r.TotalPrice, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPaymentsCSV streams every payment as CSV, newest first.
func (s *Service) ExportPaymentsCSV(ctx context.Context, w io.Writer) error {
	payments, err := s.payments.List(ctx, repository.PaymentFilters{})
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "reservation_id", "property_id", "amount", "commission_pct", "commission_amount", "owner_amount", "method", "status", "paid_at", "reference"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range payments {
		p := &payments[i]
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.Format("2006-01-02")
		}
		record := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.ReservationID, 10),
			strconv.FormatInt(p.PropertyID, 10),
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			strconv.FormatFloat(p.CommissionPct, 'f', 2, 64),
			strconv.FormatFloat(p.CommissionAmount, 'f', 2, 64),
			strconv.FormatFloat(p.OwnerAmount, 'f', 2, 64),
			string(p.Method),
			string(p.Status),
			paidAt,
			p.Reference,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
