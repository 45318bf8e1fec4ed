package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgreementValidate(t *testing.T) {
	agreement := Agreement{
		UserName:    "Mina Rahman",
		UserEmail:   "mina@example.com",
		FloorNo:     3,
		BlockName:   "B",
		ApartmentNo: 302,
		Rent:        12000,
	}
	assert.NoError(t, agreement.Validate())

	agreement.UserEmail = ""
	assert.Error(t, agreement.Validate())
}

func TestUserValidate(t *testing.T) {
	user := User{Email: "mina@example.com", Name: "Mina Rahman"}
	assert.NoError(t, user.Validate())

	user.Name = ""
	assert.Error(t, user.Validate())
}

func TestAnnouncementValidate(t *testing.T) {
	announcement := Announcement{Title: "T", Description: "D"}
	assert.NoError(t, announcement.Validate())

	announcement.Title = ""
	assert.Error(t, announcement.Validate())
}
