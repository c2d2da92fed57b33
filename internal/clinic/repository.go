package clinic

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucventura/clinicday/internal/storage"
)

// Repository handles all database operations for the clinic calendar
type Repository struct {
	db     *storage.Database
	logger *slog.Logger
}

// NewRepository creates a new repository
func NewRepository(db *storage.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: DefaultLogger(logger)}
}

// SaveDay saves a complete day to the database
// This performs a full replace operation within a transaction
func (r *Repository) SaveDay(d *Day) error {
	r.logger.Info("SaveDay", "date", d.Date, "appointments", len(d.Appointments), "blocks", len(d.Blocks))

	tx, err := r.db.BeginTx()
	if err != nil {
		r.logger.Error("SaveDay", "error", err, "date", d.Date, "operation", "begin_transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.deleteDayData(tx, d.Date); err != nil {
		r.logger.Error("SaveDay", "error", err, "date", d.Date, "operation", "delete_existing_data")
		return err
	}

	for _, appt := range d.Appointments {
		if err := insertAppointment(tx, d.Date, &appt); err != nil {
			r.logger.Error("SaveDay", "error", err, "date", d.Date, "appointment_id", appt.ID)
			return err
		}
	}

	for _, block := range d.Blocks {
		if err := insertBlock(tx, d.Date, &block); err != nil {
			r.logger.Error("SaveDay", "error", err, "date", d.Date, "block_id", block.ID)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("SaveDay", "error", err, "date", d.Date, "operation", "commit_transaction")
		return err
	}
	return nil
}

// GetDay loads everything scheduled on the given date. A date with no rows
// yields an empty day, not an error.
func (r *Repository) GetDay(date string) (*Day, error) {
	d := NewDay(date)

	rows, err := r.db.DB().Query(
		`SELECT id, patient_name, reason, start_time, end_time
		 FROM appointments WHERE day = ? ORDER BY start_time`, date,
	)
	if err != nil {
		r.logger.Error("GetDay", "error", err, "date", date, "operation", "query_appointments")
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var appt Appointment
		var startStr, endStr string
		if err := rows.Scan(&appt.ID, &appt.PatientName, &appt.Reason, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		if appt.Start, appt.End, err = parseRange(startStr, endStr); err != nil {
			return nil, fmt.Errorf("appointment %s: %w", appt.ID, err)
		}
		d.Appointments = append(d.Appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	blockRows, err := r.db.DB().Query(
		`SELECT id, label, start_time, end_time
		 FROM availability_blocks WHERE day = ? ORDER BY start_time`, date,
	)
	if err != nil {
		r.logger.Error("GetDay", "error", err, "date", date, "operation", "query_blocks")
		return nil, fmt.Errorf("failed to query availability blocks: %w", err)
	}
	defer blockRows.Close()

	for blockRows.Next() {
		var block AvailabilityBlock
		var startStr, endStr string
		if err := blockRows.Scan(&block.ID, &block.Label, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("failed to scan availability block: %w", err)
		}
		if block.Start, block.End, err = parseRange(startStr, endStr); err != nil {
			return nil, fmt.Errorf("availability block %s: %w", block.ID, err)
		}
		d.Blocks = append(d.Blocks, block)
	}
	if err := blockRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate availability blocks: %w", err)
	}

	return d, nil
}

// AddAppointment inserts a single appointment for the given date
func (r *Repository) AddAppointment(date string, appt *Appointment) error {
	r.logger.Info("AddAppointment", "date", date, "appointment_id", appt.ID)

	tx, err := r.db.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertAppointment(tx, date, appt); err != nil {
		r.logger.Error("AddAppointment", "error", err, "date", date, "appointment_id", appt.ID)
		return err
	}

	return tx.Commit()
}

// AddBlock inserts a single availability block for the given date
func (r *Repository) AddBlock(date string, block *AvailabilityBlock) error {
	r.logger.Info("AddBlock", "date", date, "block_id", block.ID)

	tx, err := r.db.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertBlock(tx, date, block); err != nil {
		r.logger.Error("AddBlock", "error", err, "date", date, "block_id", block.ID)
		return err
	}

	return tx.Commit()
}

// DeleteAppointment removes an appointment by ID. Returns sql.ErrNoRows if
// no such appointment exists.
func (r *Repository) DeleteAppointment(id string) error {
	r.logger.Info("DeleteAppointment", "appointment_id", id)

	result, err := r.db.DB().Exec("DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteBlock removes an availability block by ID. Returns sql.ErrNoRows if
// no such block exists.
func (r *Repository) DeleteBlock(id string) error {
	r.logger.Info("DeleteBlock", "block_id", id)

	result, err := r.db.DB().Exec("DELETE FROM availability_blocks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete availability block: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *Repository) deleteDayData(tx *sql.Tx, date string) error {
	if _, err := tx.Exec("DELETE FROM appointments WHERE day = ?", date); err != nil {
		return fmt.Errorf("failed to delete appointments: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM availability_blocks WHERE day = ?", date); err != nil {
		return fmt.Errorf("failed to delete availability blocks: %w", err)
	}
	return nil
}

func insertAppointment(tx *sql.Tx, date string, appt *Appointment) error {
	_, err := tx.Exec(
		`INSERT INTO appointments (id, day, patient_name, reason, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		appt.ID, date, appt.PatientName, appt.Reason,
		appt.Start.Format(time.RFC3339), appt.End.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func insertBlock(tx *sql.Tx, date string, block *AvailabilityBlock) error {
	_, err := tx.Exec(
		`INSERT INTO availability_blocks (id, day, label, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?)`,
		block.ID, date, block.Label,
		block.Start.Format(time.RFC3339), block.End.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert availability block: %w", err)
	}
	return nil
}

func parseRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return start, end, fmt.Errorf("invalid start time %q: %w", startStr, err)
	}
	end, err = time.Parse(time.RFC3339, endStr)
	if err != nil {
		return start, end, fmt.Errorf("invalid end time %q: %w", endStr, err)
	}
	return start, end, nil
}
