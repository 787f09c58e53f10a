package shed

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusInactive          Status = "inactive"
	StatusCleaning          Status = "cleaning"
	StatusReadyToProduction Status = "readyToProduction"
	StatusProduction        Status = "production"
)

// next is the lifecycle adjacency table. Each state has exactly one successor.
var next = map[Status]Status{
	StatusInactive:          StatusCleaning,
	StatusCleaning:          StatusReadyToProduction,
	StatusReadyToProduction: StatusProduction,
	StatusProduction:        StatusInactive,
}

func (s Status) Valid() bool {
	_, ok := next[s]
	return ok
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
func CanTransition(from, to Status) bool {
	successor, ok := next[from]
	return ok && successor == to
}

type Shed struct {
	ID          string `json:"id"`
	FarmID      string `json:"farmId"`
	ShedNumber  int    `json:"shedNumber"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`

	// Per-generation counters
	InitialChicken int             `json:"initialChicken"`
	Mortality      int             `json:"mortality"`
	FoodConsumed   decimal.Decimal `json:"foodConsumed"`
	WaterConsumed  decimal.Decimal `json:"waterConsumed"`
	EggProduction  int             `json:"eggProduction"`
	AgeWeeks       *int            `json:"ageWeeks"`
	GenerationID   *string         `json:"generationId"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResetGeneration clears the per-generation counters.
func (s *Shed) ResetGeneration() {
	s.InitialChicken = 0
	s.Mortality = 0
	s.FoodConsumed = decimal.Zero
	s.WaterConsumed = decimal.Zero
	s.EggProduction = 0
	s.AgeWeeks = nil
	s.GenerationID = nil
}

type HistoryReason string

const (
	ReasonGenerationClosed HistoryReason = "generation_closed"
	ReasonUpdate           HistoryReason = "update"
)

// History is a snapshot of a shed taken before a destructive change.
type History struct {
	ID           string
	ShedID       string
	GenerationID *string
	Reason       HistoryReason
	Snapshot     Shed
	CreatedAt    time.Time
}
