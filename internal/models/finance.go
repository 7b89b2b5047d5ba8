package models

import "time"

// Financial record kinds.
const (
	FinanceKindPayment     = "payment"     // one-off
	FinanceKindInstallment = "installment" // recurring monthly
)

// FinancialRecord tracks a payment or an installment plan.
// Amounts are stored in cents to avoid float drift.
type FinancialRecord struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"index;not null"`
	Title         string `gorm:"size:128;not null"`
	AmountCent    int64  `gorm:"not null"`
	Kind          string `gorm:"size:16;not null;default:payment"` // payment / installment
	TotalMonths   int    `gorm:"not null;default:0"`
	PaidMonths    int    `gorm:"not null;default:0"`
	LastPaidMonth string `gorm:"size:7"` // YYYY-MM
	Note          string `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
