package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreatePointRequest carries the registration payload. Fields are accepted
// as submitted: no required-field or coordinate checks, matching the
// permissive policy of the registration form.
type CreatePointRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	UF        string  `json:"uf"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Items     []uint  `json:"items"`
}

// ListPointsRequest is the query-string filter. All three parts are required;
// city/uf match exactly, items is a comma-joined integer list matched as OR.
type ListPointsRequest struct {
	City  string `form:"city"`
	UF    string `form:"uf"`
	Items string `form:"items"`
}

func (req *ListPointsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.City, validation.Required),
		validation.Field(&req.UF, validation.Required),
		validation.Field(&req.Items, validation.Required),
	)
}

var itemsListPattern = regexp2.MustCompile(`^\s*\d+\s*(,\s*\d+\s*)*$`, regexp2.None)

// ParseItemIDs splits the comma-joined items filter into ids. Malformed
// entries fail fast; nothing is silently coerced.
func (req *ListPointsRequest) ParseItemIDs() ([]uint, error) {
	ok, err := itemsListPattern.MatchString(req.Items)
	if err != nil || !ok {
		return nil, fmt.Errorf("items must be a comma-joined list of integers, got %q", req.Items)
	}

	parts := strings.Split(req.Items, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q -> %w", part, err)
		}

		ids = append(ids, uint(id))
	}

	return ids, nil
}
