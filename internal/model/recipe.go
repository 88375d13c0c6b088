package model

import (
	"database/sql/driver"

	"github.com/goccy/go-json"
)

// StringList is a custom type for storing ordered string sequences in a JSON column
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface. Unreadable values scan as an empty list.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(bytes, &out); err != nil {
		*l = StringList{}
		return nil
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// Recipe is a stored recipe record. It is read-only from the point of view of the API.
type Recipe struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"-"`
	Name        string     `gorm:"size:255" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Difficulty  int        `json:"difficulty"`
	Image       string     `gorm:"size:1024" json:"image"`
	DateCreated string     `gorm:"size:64;index" json:"dateCreated"`
	Country     string     `gorm:"size:128" json:"country"`
	Rating      float64    `json:"rating"`
	Ingredients StringList `gorm:"type:text;not null;default:'[]'" json:"ingredients"`
	Tags        StringList `gorm:"type:text;not null;default:'[]'" json:"tags"`
	Steps       StringList `gorm:"type:text;not null;default:'[]'" json:"steps"`
	CreatorID   *int64     `gorm:"index" json:"-"`
}

// Normalize replaces absent token sequences with empty ones.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = StringList{}
	}
	if r.Tags == nil {
		r.Tags = StringList{}
	}
	if r.Steps == nil {
		r.Steps = StringList{}
	}
}

// User is the creator of recipes. Only used to resolve the creator join.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:255;not null" json:"username"`
}

// MatchResult pairs a recipe with the identifier the store assigned to it
type MatchResult struct {
	RecipeID int64  `json:"recipeId"`
	Recipe   Recipe `json:"recipe"`
}
