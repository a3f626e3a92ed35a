package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Promotion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code          string             `bson:"code" json:"code"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	DiscountType  string             `bson:"discountType" json:"discountType"` // percentage, fixed
	DiscountValue float64            `bson:"discountValue" json:"discountValue"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	EndDate       time.Time          `bson:"endDate" json:"endDate"`
	MaxUsage      int                `bson:"maxUsage" json:"maxUsage"`
	UsedCount     int                `bson:"usedCount" json:"usedCount"`
	Status        string             `bson:"status" json:"status"` // active, inactive, expired
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreatePromotionInput struct {
	Code          string  `json:"code" validate:"required,uppercase,min=3,max=20"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discountValue" validate:"required,gt=0"`
	StartDate     string  `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate       string  `json:"endDate" validate:"required"`
	MaxUsage      int     `json:"maxUsage" validate:"omitempty,gte=0"`
}

type EditPromotionInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	DiscountValue *float64 `json:"discountValue" validate:"omitempty,gt=0"`
	MaxUsage      *int     `json:"maxUsage" validate:"omitempty,gte=0"`
	Status        *string  `json:"status" validate:"omitempty,oneof=active inactive expired"`
}
