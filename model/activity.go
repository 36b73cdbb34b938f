package model

import (
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
)

type Activity struct {
	ID                 uint64                      `db:"id" json:"id"`
	UserID             uint64                      `db:"user_id" json:"userId"`
	Type               constant.ActivityType       `db:"type" json:"type"`
	CustomType         string                      `db:"custom_type" json:"customType,omitempty"`
	Description        string                      `db:"description" json:"description,omitempty"`
	CarbonValue        float64                     `db:"carbon_value" json:"carbonValue"`
	Date               time.Time                   `db:"date" json:"date"`
	Location           string                      `db:"location" json:"location,omitempty"`
	Source             string                      `db:"source" json:"source,omitempty"`
	Tags               Tags                        `db:"tags" json:"tags"`
	VerificationStatus constant.VerificationStatus `db:"verification_status" json:"verificationStatus"`
	MediaURL           string                      `db:"media_url" json:"mediaUrl,omitempty"`
	Notes              string                      `db:"notes" json:"notes,omitempty"`
	IsPublic           bool                        `db:"is_public" json:"isPublic"`
	DeletedAt          *time.Time                  `db:"deleted_at" json:"-"`
	CreatedAt          time.Time                   `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time                   `db:"updated_at" json:"updatedAt"`

	User *Author `db:"-" json:"user,omitempty"`
}

type CreateActivityRequest struct {
	Type        string     `json:"type" validate:"required,oneof=TRANSPORTATION ENERGY FOOD WASTE WATER OTHER"`
	CustomType  string     `json:"customType" validate:"omitempty,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	CarbonValue *float64   `json:"carbonValue" validate:"required,gte=0"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location" validate:"omitempty,max=255"`
	Source      string     `json:"source" validate:"omitempty,max=100"`
	Tags        []string   `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	MediaURL    string     `json:"mediaUrl" validate:"omitempty,url"`
	Notes       string     `json:"notes" validate:"omitempty,max=1000"`
	IsPublic    *bool      `json:"isPublic"`
}

// UpdateActivityRequest is a partial update; nil fields are left unchanged.
type UpdateActivityRequest struct {
	Type        *string    `json:"type" validate:"omitempty,oneof=TRANSPORTATION ENERGY FOOD WASTE WATER OTHER"`
	CustomType  *string    `json:"customType" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	CarbonValue *float64   `json:"carbonValue" validate:"omitempty,gte=0"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Source      *string    `json:"source" validate:"omitempty,max=100"`
	Tags        []string   `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	MediaURL    *string    `json:"mediaUrl" validate:"omitempty,url"`
	Notes       *string    `json:"notes" validate:"omitempty,max=1000"`
	IsPublic    *bool      `json:"isPublic"`
}

type VerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING VERIFIED REJECTED"`
}
