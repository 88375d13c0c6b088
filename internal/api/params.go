package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Path and query parameters of the public recipe endpoints. Binding tags are checked by
// gin's validator before the service sees the values.

type idURI struct {
	ID int64 `uri:"id" binding:"gte=0"`
}

type skipURI struct {
	Skipper int `uri:"skipper" binding:"gte=0"`
}

type randomURI struct {
	Limit int `uri:"limit" binding:"gte=1,lte=100"`
}

type nameURI struct {
	Name    string `uri:"name" binding:"required"`
	Skipper int    `uri:"skipper" binding:"gte=0"`
}

type countryURI struct {
	Country string `uri:"country" binding:"required"`
	Skipper int    `uri:"skipper" binding:"gte=0"`
}

type ingredientsURI struct {
	Ingredients string `uri:"ingredients" binding:"required"`
	Skipper     int    `uri:"skipper" binding:"gte=0"`
}

type tagsURI struct {
	Tags    string `uri:"tags" binding:"required"`
	Skipper int    `uri:"skipper" binding:"gte=0"`
}

// searchQuery holds the optional filters of the combined search. Absent parameters stay nil.
type searchQuery struct {
	Name        *string  `form:"name"`
	Country     *string  `form:"country"`
	Difficulty  *int     `form:"difficulty" binding:"omitempty,gte=0"`
	Rating      *float64 `form:"rating" binding:"omitempty,gte=0"`
	Ingredients string   `form:"ingredients"`
	Tags        string   `form:"tags"`
}

// bindingMessage renders a binding failure as a client-facing message
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// strconv failures from gin's mapping, e.g. a non-numeric skipper
		return "malformed parameter: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
