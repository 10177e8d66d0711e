package user

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// createdAtLayout is ISO-8601 with milliseconds in the local zone.
const createdAtLayout = "2006-01-02T15:04:05.000-07:00"

// User is the persisted document. JSON tags mirror the document shape
// the API exposes.
type User struct {
	ID        string `json:"_id"`
	Email     Email  `json:"email"`
	Password  string `json:"password"`
	Nickname  string `json:"nickname"`
	Name      Name   `json:"name"`
	CreatedAt string `json:"createdAt"`
	Type      string `json:"type"`
	Avatar    Avatar `json:"avatar"`
}

type Email struct {
	Current    string   `json:"current"`
	IsVerified bool     `json:"isVerified"`
	OldEmails  []string `json:"oldEmails"`
}

type Name struct {
	FirstName  string  `json:"firstName"`
	SecondName *string `json:"secondName,omitempty"`
	LastName   string  `json:"lastName"`
}

type Avatar struct {
	Source      *string     `json:"source,omitempty"`
	BlockAvatar BlockAvatar `json:"blockAvatar"`
}

type BlockAvatar struct {
	Color     string `json:"color"`
	BgColor   string `json:"bgColor"`
	SpotColor string `json:"spotColor"`
}

type NewUserInput struct {
	Email        string
	Password     string
	Nickname     string
	FirstName    string
	SecondName   *string
	LastName     string
	AvatarSource *string
}

// New builds a user document with a generated identifier, avatar
// palette and creation timestamp. Name parts are trimmed of surrounding
// whitespace; only the shape is enforced, an all-whitespace name still
// passes.
func New(in NewUserInput) User {
	var second *string
	if in.SecondName != nil {
		s := strings.TrimSpace(*in.SecondName)
		second = &s
	}

	return User{
		ID: uuid.NewString(),
		Email: Email{
			Current:   in.Email,
			OldEmails: []string{},
		},
		Password: in.Password,
		Nickname: in.Nickname,
		Name: Name{
			FirstName:  strings.TrimSpace(in.FirstName),
			SecondName: second,
			LastName:   strings.TrimSpace(in.LastName),
		},
		CreatedAt: time.Now().Format(createdAtLayout),
		Type:      "user",
		Avatar: Avatar{
			Source: in.AvatarSource,
			BlockAvatar: BlockAvatar{
				Color:     randColor(),
				BgColor:   randColor(),
				SpotColor: randColor(),
			},
		},
	}
}

// randColor draws an independent random 24-bit RGB value per call.
func randColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0x1000000))
}
