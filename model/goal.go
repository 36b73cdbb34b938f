package model

import (
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
)

type Goal struct {
	ID             uint64                 `db:"id" json:"id"`
	UserID         uint64                 `db:"user_id" json:"userId"`
	Title          string                 `db:"title" json:"title"`
	Description    string                 `db:"description" json:"description,omitempty"`
	Category       constant.GoalCategory  `db:"category" json:"category,omitempty"`
	TargetValue    float64                `db:"target_value" json:"targetValue"`
	CurrentValue   float64                `db:"current_value" json:"currentValue"`
	Deadline       time.Time              `db:"deadline" json:"deadline"`
	IsActive       bool                   `db:"is_active" json:"isActive"`
	Notes          string                 `db:"notes" json:"notes,omitempty"`
	Recurring      constant.GoalRecurring `db:"recurring" json:"recurring"`
	CompletionDate *time.Time             `db:"completion_date" json:"completionDate,omitempty"`
	Tags           Tags                   `db:"tags" json:"tags"`
	IsPublic       bool                   `db:"is_public" json:"isPublic"`
	DeletedAt      *time.Time             `db:"deleted_at" json:"-"`
	CreatedAt      time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time              `db:"updated_at" json:"updatedAt"`

	ProgressHistory []GoalProgress `db:"-" json:"progressHistory,omitempty"`
	User            *Author        `db:"-" json:"user,omitempty"`
}

type GoalProgress struct {
	ID        uint64    `db:"id" json:"id"`
	GoalID    uint64    `db:"goal_id" json:"goalId"`
	Value     float64   `db:"value" json:"value"`
	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateGoalRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	TargetValue *float64   `json:"targetValue" validate:"required,gt=0"`
	Deadline    *time.Time `json:"deadline" validate:"required"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Category    string     `json:"category" validate:"omitempty,oneof=TRANSPORT ENERGY FOOD LIFESTYLE OTHER"`
	Notes       string     `json:"notes" validate:"omitempty,max=1000"`
	Recurring   string     `json:"recurring" validate:"omitempty,oneof=NONE WEEKLY MONTHLY YEARLY"`
	Tags        []string   `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	IsPublic    *bool      `json:"isPublic"`
}

// UpdateGoalRequest is a partial update; nil fields are left unchanged.
type UpdateGoalRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	TargetValue *float64   `json:"targetValue" validate:"omitempty,gt=0"`
	Deadline    *time.Time `json:"deadline"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Category    *string    `json:"category" validate:"omitempty,oneof=TRANSPORT ENERGY FOOD LIFESTYLE OTHER"`
	Notes       *string    `json:"notes" validate:"omitempty,max=1000"`
	Recurring   *string    `json:"recurring" validate:"omitempty,oneof=NONE WEEKLY MONTHLY YEARLY"`
	IsActive    *bool      `json:"isActive"`
	Tags        []string   `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	IsPublic    *bool      `json:"isPublic"`
}

type GoalProgressRequest struct {
	Value *float64   `json:"value" validate:"required"`
	Date  *time.Time `json:"date"`
}

// GoalProgressUpdate is applied to a goal after a progress entry is recorded.
type GoalProgressUpdate struct {
	CurrentValue   float64
	CompletionDate *time.Time
}
