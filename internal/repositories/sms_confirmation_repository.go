package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"autorevenda/internal/models"
)

type SMSConfirmationRepository interface {
	Create(rec *models.SMSConfirmation) (int64, error)
	LatestByContract(contractID int) (*models.SMSConfirmation, error)
	IncrementAttempts(id int64) error
	MarkConfirmed(id int64, at time.Time) error
	CountSentSince(contractID int, since time.Time) (int, error)
	DeleteByContract(contractID int) error
}

type smsConfirmationRepository struct {
	db *sql.DB
}

func NewSMSConfirmationRepository(db *sql.DB) SMSConfirmationRepository {
	return &smsConfirmationRepository{db: db}
}

const smsColumns = `id, contract_id, phone, sms_code, sent_at, attempts, confirmed, confirmed_at`

func (r *smsConfirmationRepository) Create(rec *models.SMSConfirmation) (int64, error) {
	const q = `
                INSERT INTO sms_confirmations (contract_id, phone, sms_code, sent_at, attempts, confirmed)
                VALUES ($1, $2, $3, $4, 0, false)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, rec.ContractID, rec.Phone, rec.SMSCode, rec.SentAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create sms confirmation: %w", err)
	}
	return id, nil
}

func (r *smsConfirmationRepository) LatestByContract(contractID int) (*models.SMSConfirmation, error) {
	q := `SELECT ` + smsColumns + ` FROM sms_confirmations WHERE contract_id=$1 ORDER BY sent_at DESC LIMIT 1`
	var rec models.SMSConfirmation
	var confirmedAt sql.NullTime
	err := r.db.QueryRow(q, contractID).Scan(&rec.ID, &rec.ContractID, &rec.Phone, &rec.SMSCode,
		&rec.SentAt, &rec.Attempts, &rec.Confirmed, &confirmedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("latest sms confirmation: %w", err)
	}
	if confirmedAt.Valid {
		rec.ConfirmedAt = confirmedAt.Time
	}
	return &rec, nil
}

func (r *smsConfirmationRepository) IncrementAttempts(id int64) error {
	const q = `UPDATE sms_confirmations SET attempts = attempts + 1 WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("increment sms attempts: %w", err)
	}
	return nil
}

func (r *smsConfirmationRepository) MarkConfirmed(id int64, at time.Time) error {
	const q = `UPDATE sms_confirmations SET confirmed=true, confirmed_at=$1 WHERE id=$2`
	if _, err := r.db.Exec(q, at, id); err != nil {
		return fmt.Errorf("mark sms confirmed: %w", err)
	}
	return nil
}

func (r *smsConfirmationRepository) CountSentSince(contractID int, since time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM sms_confirmations WHERE contract_id=$1 AND sent_at >= $2`
	var n int
	if err := r.db.QueryRow(q, contractID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sms sent: %w", err)
	}
	return n, nil
}

func (r *smsConfirmationRepository) DeleteByContract(contractID int) error {
	const q = `DELETE FROM sms_confirmations WHERE contract_id=$1`
	if _, err := r.db.Exec(q, contractID); err != nil {
		return fmt.Errorf("delete sms confirmations: %w", err)
	}
	return nil
}
