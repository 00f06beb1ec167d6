package model

import (
	"strings"
	"time"
)

type Condition string

const (
	ConditionGood        Condition = "Good"
	ConditionFair        Condition = "Fair"
	ConditionMinorDamage Condition = "Minor Damage"
	ConditionBroken      Condition = "Broken"
)

// ParseCondition normalizes an equipment condition in any letter case.
func ParseCondition(s string) (Condition, bool) {
	if strings.EqualFold(strings.TrimSpace(s), string(ConditionFair)) {
		return ConditionFair, true
	}
	return ParseReturnCondition(s)
}

// ParseReturnCondition normalizes the condition recorded on return.
// "Major Damage" is an alias of Broken.
func ParseReturnCondition(s string) (Condition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return ConditionGood, true
	case "minor damage":
		return ConditionMinorDamage, true
	case "broken", "major damage", "major/broken":
		return ConditionBroken, true
	}
	return "", false
}

type BorrowStatus string

const (
	StatusOngoing  BorrowStatus = "Ongoing"
	StatusReturned BorrowStatus = "Returned"
	// StatusOverdue is derived at read time and never stored.
	StatusOverdue BorrowStatus = "Overdue"
)

// DeriveStatus reports Overdue for an ongoing borrow whose due date has passed.
func DeriveStatus(status BorrowStatus, due *time.Time, now time.Time) BorrowStatus {
	if status == StatusOngoing && due != nil && now.After(*due) {
		return StatusOverdue
	}
	return status
}

// DaysOverdue counts calendar days (UTC) between the due date and now, 0 when not yet due.
func DaysOverdue(due, now time.Time) int {
	if !now.After(due) {
		return 0
	}
	return int(day(now).Sub(day(due)) / (24 * time.Hour))
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Equipment struct {
	ID          int64     `json:"id" db:"equipment_id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Condition   Condition `json:"condition" db:"condition"`
}

// Available reports whether at least one unit can be lent.
func (e Equipment) Available() bool {
	return e.Quantity > 0 && e.Condition != ConditionBroken
}

const (
	LabelOutOfStock = "Out of Stock"
	LabelBroken     = "Broken"
	LabelAvailable  = "Available"
)

func InventoryLabel(e Equipment) string {
	switch {
	case e.Quantity == 0:
		return LabelOutOfStock
	case e.Condition == ConditionBroken:
		return LabelBroken
	default:
		return LabelAvailable
	}
}

type EquipmentFilter struct {
	AvailableOnly bool
	Category      string
	Search        string
}

// EquipmentUpdate changes only the fields that are set.
type EquipmentUpdate struct {
	Category  *string
	Quantity  *int
	Condition *Condition
}

func (u EquipmentUpdate) Empty() bool {
	return u.Category == nil && u.Quantity == nil && u.Condition == nil
}

type Borrower struct {
	ID           int64  `json:"id" db:"borrower_id"`
	ExternalCode string `json:"externalCode" db:"student_id"`
	FullName     string `json:"fullName" db:"full_name"`
	Contact      string `json:"contact" db:"contact"`
	Department   string `json:"department" db:"department"`
}

type Borrow struct {
	ID                 int64        `json:"id" db:"borrow_id"`
	EquipmentID        int64        `json:"equipmentId" db:"equipment_id"`
	BorrowerID         int64        `json:"borrowerId" db:"borrower_id"`
	BorrowDate         time.Time    `json:"borrowDate" db:"borrow_date"`
	ExpectedReturnDate *time.Time   `json:"expectedReturnDate,omitempty" db:"expected_return_date"`
	Purpose            string       `json:"purpose" db:"purpose"`
	Status             BorrowStatus `json:"status" db:"status"`
}

type Return struct {
	ID         int64     `json:"id" db:"return_id"`
	BorrowID   int64     `json:"borrowId" db:"borrow_id"`
	ReturnDate time.Time `json:"returnDate" db:"return_date"`
	Condition  Condition `json:"condition" db:"condition"`
	Remarks    string    `json:"remarks" db:"remarks"`
}

// BorrowDetail is a borrow joined with equipment and borrower display data.
type BorrowDetail struct {
	Borrow
	EquipmentCode string  `json:"equipmentCode" db:"equipment_code"`
	EquipmentName string  `json:"equipmentName" db:"equipment_name"`
	ExternalCode  string  `json:"externalCode" db:"student_id"`
	FullName      string  `json:"fullName" db:"full_name"`
	Return        *Return `json:"return,omitempty" db:"-"`
}

type BorrowRequest struct {
	EquipmentID        int64
	BorrowerID         int64
	Borrower           *BorrowerIdentity
	BorrowDate         time.Time
	ExpectedReturnDate *time.Time
	Purpose            string
	Quantity           int
}

type BorrowerIdentity struct {
	ExternalCode string `json:"externalCode" validate:"required,extcode"`
	FullName     string `json:"fullName" validate:"required"`
	Contact      string `json:"contact"`
	Department   string `json:"department"`
}

type BorrowResult struct {
	BorrowIDs  []int64   `json:"borrowIds"`
	BorrowerID int64     `json:"borrowerId"`
	Equipment  Equipment `json:"equipment"`
}

type ReturnRequest struct {
	BorrowID  int64
	Condition Condition
	Remarks   string
	ReturnAt  time.Time
}

type ReturnResult struct {
	ReturnID  int64     `json:"returnId"`
	BorrowID  int64     `json:"borrowId"`
	Condition Condition `json:"condition"`
	Restocked bool      `json:"restocked"`
}

type ActiveBorrow struct {
	BorrowDetail
	DerivedStatus BorrowStatus `json:"derivedStatus" db:"-"`
}
