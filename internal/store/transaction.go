package store

import "time"

type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
)

const DefaultTransactionLimit = 10

// TimestampLayout is fixed-width so that text order in created_at matches time order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

func (t TransactionType) Valid() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}
