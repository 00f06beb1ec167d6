package model

import "time"

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DayRange covers the whole days from..to inclusive.
func DayRange(from, to time.Time) DateRange {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return DateRange{From: from, To: to}
}

type HistoryEntry struct {
	BorrowDetail
	ReturnDate      *time.Time `json:"returnDate,omitempty" db:"return_date"`
	ReturnCondition *string    `json:"returnCondition,omitempty" db:"return_condition"`
}

type DamageEntry struct {
	ReturnID      int64     `json:"returnId" db:"return_id"`
	BorrowID      int64     `json:"borrowId" db:"borrow_id"`
	ReturnDate    time.Time `json:"returnDate" db:"return_date"`
	Condition     Condition `json:"condition" db:"condition"`
	Remarks       string    `json:"remarks" db:"remarks"`
	EquipmentCode string    `json:"equipmentCode" db:"equipment_code"`
	EquipmentName string    `json:"equipmentName" db:"equipment_name"`
	ExternalCode  string    `json:"externalCode" db:"student_id"`
	FullName      string    `json:"fullName" db:"full_name"`
}

type OverdueEntry struct {
	BorrowDetail
	DaysOverdue int `json:"daysOverdue" db:"-"`
}

type InventoryEntry struct {
	Equipment
	Status string `json:"status" db:"-"`
}

type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type Dashboard struct {
	ActiveBorrows  []ActiveBorrow   `json:"activeBorrows"`
	Inventory      []InventoryEntry `json:"inventory"`
	OverdueCount   int              `json:"overdueCount"`
	TotalEquipment int              `json:"totalEquipment"`
	TotalUnits     int              `json:"totalUnits"`
}

type ActivityLog struct {
	ID        int64     `json:"id" db:"log_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
