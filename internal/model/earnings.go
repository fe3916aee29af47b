package model

import "time"

// SourceTableAllocations is the source_table value for ledger entries
// posted from transport allocations.
const SourceTableAllocations = "task_transport_allocations"

// EarningsLedgerEntry is an append-only financial fact: money owed to a
// user, keyed back to the row that produced it. The database enforces
// at most one entry per (source_table, source_id); cancellation voids
// an entry (VoidedAt) instead of deleting it.
type EarningsLedgerEntry struct {
	ID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      string     `gorm:"type:uuid;not null"                             json:"user_id"`
	Type        string     `gorm:"type:varchar(20);not null"                      json:"type"` // transport | honor | bonus
	Amount      int64      `gorm:"not null"                                       json:"amount"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description"`
	OccurredOn  DateOnly   `gorm:"type:date;not null"                             json:"occurred_on"`
	PostedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"posted_at"`
	SourceTable string     `gorm:"type:varchar(64);not null"                      json:"source_table"`
	SourceID    string     `gorm:"type:uuid;not null"                             json:"source_id"`
	VoidedAt    *time.Time `json:"voided_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (EarningsLedgerEntry) TableName() string { return "earnings_ledger" }

// FinancialRecord is a monthly committed amount for a recipient within
// a project (honor for mitra, transport budget for pegawai). Feeds the
// mitra monthly-cap check and the earnings history endpoints.
type FinancialRecord struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID     string    `gorm:"type:uuid;not null"                             json:"project_id"`
	RecipientType string    `gorm:"type:varchar(10);not null"                      json:"recipient_type"` // pegawai | mitra
	RecipientID   string    `gorm:"type:uuid;not null"                             json:"recipient_id"`
	Amount        int64     `gorm:"not null"                                       json:"amount"`
	Description   string    `gorm:"type:text;not null;default:''"                  json:"description"`
	Bulan         int       `gorm:"not null"                                       json:"bulan"`
	Tahun         int       `gorm:"not null"                                       json:"tahun"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID" json:"project,omitempty"`
}

// TableName sets the table name.
func (FinancialRecord) TableName() string { return "financial_records" }
