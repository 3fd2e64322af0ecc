package models

import "time"

// SMSConfirmation holds a one-time code sent to the client's phone to
// confirm a contract signature.
type SMSConfirmation struct {
	ID          int64     `json:"id"`
	ContractID  int       `json:"contract_id"`
	Phone       string    `json:"phone"`
	SMSCode     string    `json:"-"`
	SentAt      time.Time `json:"sent_at"`
	Attempts    int       `json:"attempts"`
	Confirmed   bool      `json:"confirmed"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
