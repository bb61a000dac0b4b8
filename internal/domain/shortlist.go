package domain

import "time"

type ShortlistItem struct {
	ID                string    `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"-"`
	LocationID        string    `db:"location_id" json:"locationId"`
	State             string    `db:"state" json:"state"`
	Label             string    `db:"label" json:"label"`
	TotalScore        float64   `db:"total_score" json:"totalScore"`
	EducationScore    float64   `db:"education_score" json:"educationScore"`
	FinancialScore    float64   `db:"financial_score" json:"financialScore"`
	STRViabilityScore float64   `db:"str_viability_score" json:"strViabilityScore"`
	LifestyleScore    float64   `db:"lifestyle_score" json:"lifestyleScore"`
	OverallNotes      string    `db:"overall_notes" json:"overallNotes,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}
