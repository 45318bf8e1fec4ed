package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Apartment struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	FloorNo        int                `bson:"floorNo" json:"floorNo"`
	BlockName      string             `bson:"blockName" json:"blockName"`
	ApartmentNo    int                `bson:"apartmentNo" json:"apartmentNo"`
	Rent           float64            `bson:"rent" json:"rent"`
	ApartmentImage string             `bson:"apartmentImage,omitempty" json:"apartmentImage,omitempty"`
}

type AgreementStatus string

const (
	StatusPending = "pending"
)

type Agreement struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	UserName    string             `bson:"userName" json:"userName" validate:"required"`
	UserEmail   string             `bson:"userEmail" json:"userEmail" validate:"required"`
	FloorNo     int                `bson:"floorNo" json:"floorNo" validate:"required"`
	BlockName   string             `bson:"blockName" json:"blockName" validate:"required"`
	ApartmentNo int                `bson:"apartmentNo" json:"apartmentNo" validate:"required"`
	Rent        float64            `bson:"rent" json:"rent" validate:"required"`
	Status      AgreementStatus    `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type UserRole string

const (
	RoleAdmin = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Email     string             `bson:"email" json:"email" validate:"required"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Role      UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (agreement *Agreement) Validate() error {
	validate := validator.New()
	return validate.Struct(agreement)
}

func (user *User) Validate() error {
	validate := validator.New()
	return validate.Struct(user)
}

func (announcement *Announcement) Validate() error {
	validate := validator.New()
	return validate.Struct(announcement)
}
