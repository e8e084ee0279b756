package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// CustomerStatus represents the lifecycle status of a customer account
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusProspect CustomerStatus = "prospect"
	CustomerStatusChurned  CustomerStatus = "churned"
)

// Customer represents an account the sales engineering team works with
type Customer struct {
	BaseModel
	Name          string         `gorm:"type:varchar(200);not null;index"`
	Industry      string         `gorm:"type:varchar(100)"`
	Website       string         `gorm:"type:varchar(500)"`
	Status        CustomerStatus `gorm:"type:varchar(50);not null;default:'active';index"`
	Description   string         `gorm:"type:text"`
	Tags          pq.StringArray `gorm:"type:text[]"`
	CreatedByID   string         `gorm:"type:varchar(100);column:created_by_id"`
	CreatedByName string         `gorm:"type:varchar(200);column:created_by_name"`
	UpdatedByID   string         `gorm:"type:varchar(100);column:updated_by_id"`
	Contacts      []Contact      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Partners      []Partner      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Notes         []Note         `gorm:"foreignKey:CustomerID"`
	Opportunities []Opportunity  `gorm:"foreignKey:CustomerID"`
	Profile       *Profile       `gorm:"foreignKey:CustomerID"`
}

// ConfidenceLevel is the three-valued deal-health assessment recorded on
// notes. Any phrasing outside this closed set is dropped during extraction.
type ConfidenceLevel string

const (
	ConfidenceGreen  ConfidenceLevel = "green"
	ConfidenceYellow ConfidenceLevel = "yellow"
	ConfidenceRed    ConfidenceLevel = "red"
)

// IsValid checks if the ConfidenceLevel is a valid enum value
func (c ConfidenceLevel) IsValid() bool {
	switch c {
	case ConfidenceGreen, ConfidenceYellow, ConfidenceRed:
		return true
	}
	return false
}

// Note represents a field note on a customer
type Note struct {
	BaseModel
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID"`
	Body          string          `gorm:"type:text;not null"`
	NoteDate      time.Time       `gorm:"type:date;not null;column:note_date;index"`
	Confidence    ConfidenceLevel `gorm:"type:varchar(20)"`
	NextSteps     string          `gorm:"type:text;column:next_steps"`
	CreatedByID   string          `gorm:"type:varchar(100);column:created_by_id"`
	CreatedByName string          `gorm:"type:varchar(200);column:created_by_name"`
	UpdatedByID   string          `gorm:"type:varchar(100);column:updated_by_id"`
}

// Profile holds the technical account profile. At most one exists per customer.
type Profile struct {
	BaseModel
	CustomerID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:customer_id"`
	Customer        *Customer      `gorm:"foreignKey:CustomerID"`
	TechStack       string         `gorm:"type:text;column:tech_stack"`
	PainPoints      pq.StringArray `gorm:"type:text[];column:pain_points"`
	Goals           pq.StringArray `gorm:"type:text[]"`
	DecisionProcess string         `gorm:"type:text;column:decision_process"`
	CurrentVendors  string         `gorm:"type:text;column:current_vendors"`
	CreatedByID     string         `gorm:"type:varchar(100);column:created_by_id"`
	UpdatedByID     string         `gorm:"type:varchar(100);column:updated_by_id"`
}

// Stage represents a phase of an opportunity's sales lifecycle
type Stage string

const (
	StagePlan          Stage = "Plan"
	StageProspect      Stage = "Prospect"
	StageQualify       Stage = "Qualify"
	StageDiscover      Stage = "Discover"
	StageDifferentiate Stage = "Differentiate"
	StagePropose       Stage = "Propose"
	StageClose         Stage = "Close"
	StageDelivery      Stage = "Delivery and Success"
	StageExpand        Stage = "Expand"
)

// OrderedStages lists all stages in display order. The ordering drives
// progress-bar rendering only; any stage may transition to any other.
var OrderedStages = []Stage{
	StagePlan,
	StageProspect,
	StageQualify,
	StageDiscover,
	StageDifferentiate,
	StagePropose,
	StageClose,
	StageDelivery,
	StageExpand,
}

// IsValid checks if the Stage is a valid enum value
func (s Stage) IsValid() bool {
	for _, stage := range OrderedStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Position returns the zero-based display position of the stage, or -1
func (s Stage) Position() int {
	for i, stage := range OrderedStages {
		if s == stage {
			return i
		}
	}
	return -1
}

// OpportunityPriority represents the relative priority of an opportunity
type OpportunityPriority string

const (
	PriorityLow    OpportunityPriority = "low"
	PriorityMedium OpportunityPriority = "medium"
	PriorityHigh   OpportunityPriority = "high"
)

// Opportunity represents a sales opportunity belonging to exactly one customer
type Opportunity struct {
	BaseModel
	CustomerID        uuid.UUID           `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer          *Customer           `gorm:"foreignKey:CustomerID"`
	Name              string              `gorm:"type:varchar(200);not null;index"`
	Description       string              `gorm:"type:text"`
	CurrentStage      Stage               `gorm:"type:varchar(50);not null;default:'Plan';column:current_stage"`
	EstimatedValue    float64             `gorm:"type:decimal(15,2);not null;default:0;column:estimated_value"`
	Currency          string              `gorm:"type:varchar(3);not null;default:'USD'"`
	CloseProbability  int                 `gorm:"type:int;not null;default:0;column:close_probability"`
	ExpectedCloseDate *time.Time          `gorm:"type:date;column:expected_close_date"`
	ActualCloseDate   *time.Time          `gorm:"type:date;column:actual_close_date"`
	Products          []Product           `gorm:"many2many:opportunity_products"`
	OwnerContactID    *uuid.UUID          `gorm:"type:uuid;column:owner_contact_id"`
	OwnerContact      *Contact            `gorm:"foreignKey:OwnerContactID"`
	Priority          OpportunityPriority `gorm:"type:varchar(20);not null;default:'medium'"`
	Type              string              `gorm:"type:varchar(100)"`
	CompetitorNotes   string              `gorm:"type:text;column:competitor_notes"`
	NextSteps         string              `gorm:"type:text;column:next_steps"`
	StageHistory      []StageTransition   `gorm:"foreignKey:OpportunityID"`
	CreatedByID       string              `gorm:"type:varchar(100);column:created_by_id"`
	CreatedByName     string              `gorm:"type:varchar(200);column:created_by_name"`
	UpdatedByID       string              `gorm:"type:varchar(100);column:updated_by_id"`
}

// StageTransition is an immutable audit record of an opportunity stage change.
// Rows are append-only; never edited or removed once written.
type StageTransition struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OpportunityID uuid.UUID    `gorm:"type:uuid;not null;index;column:opportunity_id"`
	Opportunity   *Opportunity `gorm:"foreignKey:OpportunityID"`
	FromStage     *Stage       `gorm:"type:varchar(50);column:from_stage"`
	ToStage       Stage        `gorm:"type:varchar(50);not null;column:to_stage"`
	ChangedByID   string       `gorm:"type:varchar(100);not null;column:changed_by_id"`
	ChangedByName string       `gorm:"type:varchar(200);column:changed_by_name"`
	Notes         string       `gorm:"type:text"`
	DurationDays  int          `gorm:"not null;default:0;column:duration_days"`
	ChangedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP;column:changed_at"`
}

// TableName overrides the default table name to match the migration
func (StageTransition) TableName() string {
	return "opportunity_stage_history"
}

// Product represents a catalog product that can be attached to opportunities
type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	Version     string `gorm:"type:varchar(50)"`
	Category    string `gorm:"type:varchar(100)"`
	Description string `gorm:"type:text"`
	CreatedByID string `gorm:"type:varchar(100);column:created_by_id"`
}

// Partner represents a partner organization involved with a customer
type Partner struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer    *Customer `gorm:"foreignKey:CustomerID"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Type        string    `gorm:"type:varchar(100)"`
	ContactInfo string    `gorm:"type:varchar(500);column:contact_info"`
	CreatedByID string    `gorm:"type:varchar(100);column:created_by_id"`
}

// Contact represents an individual person at a customer
type Contact struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer    *Customer `gorm:"foreignKey:CustomerID"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Role        string    `gorm:"type:varchar(100)"`
	CreatedByID string    `gorm:"type:varchar(100);column:created_by_id"`
}
