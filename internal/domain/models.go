package domain

import (
	"encoding/json"
	"fmt"
)

// FixtureUser is the immutable input record for one seeded user.
type FixtureUser struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// CreatedUser is the subset of a user confirmed created by the identity
// service, referenced by later phases.
type CreatedUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// FixtureGame is the immutable input record for one catalog entry.
type FixtureGame struct {
	GameID      string   `json:"gameId"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Developer   string   `json:"developer"`
	Tags        []string `json:"tags"`
	Genres      []string `json:"genres"`
	AgeRating   string   `json:"ageRating"`
}

// CreatedGame is the subset of a game confirmed created in the catalog.
type CreatedGame struct {
	GameID      string `json:"gameId"`
	DisplayName string `json:"displayName"`
}

// MinSpec is the fixed minimum hardware block attached to every catalog entry.
type MinSpec struct {
	OS        string `json:"os"`
	Processor string `json:"processor"`
	Memory    string `json:"memory"`
	Storage   string `json:"storage"`
}

// GameSpecs wraps the spec tiers of a catalog entry.
type GameSpecs struct {
	Minimum MinSpec `json:"minimum"`
}

// GameMedia holds media URLs for a catalog entry.
type GameMedia struct {
	CoverImageURL string `json:"coverImageUrl"`
}

// CatalogEntry is the full payload sent to the catalog service: a fixture
// game enriched with specs, media and the active flag.
type CatalogEntry struct {
	FixtureGame
	Specs  GameSpecs `json:"specs"`
	Media  GameMedia `json:"media"`
	Active bool      `json:"active"`
}

// OpaqueID decodes an identifier that a service may return as either a JSON
// string or a number.
type OpaqueID string

func (id *OpaqueID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = OpaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", data)
	}
	*id = OpaqueID(n.String())
	return nil
}

func (id OpaqueID) String() string {
	return string(id)
}
