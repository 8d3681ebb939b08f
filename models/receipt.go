package models

import "time"

// Receipt represents an uploaded receipt image attached to a case.
type Receipt struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CaseID      uint      `json:"caseId" gorm:"index;not null"`
	Case        Case      `json:"-" gorm:"foreignKey:CaseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FileName    string    `json:"fileName" gorm:"size:255;not null"`
	StorePath   string    `json:"storePath" gorm:"column:store_path;size:512"`
	ContentType string    `json:"contentType" gorm:"size:128"`
	// SuggestedAmount is the OCR-extracted amount, zero when nothing was detected.
	SuggestedAmount int64   `json:"suggestedAmount"`
	OCRConfidence   float64 `json:"ocrConfidence" gorm:"column:ocr_confidence"`
}

func (Receipt) TableName() string {
	return "receipts"
}
