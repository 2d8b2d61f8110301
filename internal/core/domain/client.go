package domain

import (
	"errors"
	"fmt"
	"time"
)

// ClientType distinguishes individuals from businesses.
type ClientType string

const (
	TypeIndividual ClientType = "individual"
	TypeBusiness   ClientType = "business"
)

var ErrClientNotFound = errors.New("client not found")
var ErrMissingField = errors.New("required field missing")
var ErrConflict = errors.New("duplicate record")
var ErrCorruptStore = errors.New("corrupt data file")

// Address is the client's registered address. City and state are stored as
// reference-table ids and resolved to names only for display.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	CityID       string `json:"city_id"`
	StateID      string `json:"state_id"`
}

// Client is a registered customer, either an individual (CPF) or a
// business (CNPJ).
type Client struct {
	ID         string     `json:"id"`
	Type       ClientType `json:"type"`
	FiscalCode string     `json:"fiscal_code"`
	Name       string     `json:"name"`
	// Date is the birth date for individuals, founding date for businesses.
	Date    string  `json:"date,omitempty"`
	Address Address `json:"address"`
	// Business-only fields.
	StateRegistration string `json:"state_registration,omitempty"`
	TradeName         string `json:"trade_name,omitempty"`
	// IconPath is the relative path of the uploaded image, or "" when the
	// client has none.
	IconPath  string     `json:"icon_path"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsBusiness reports whether the client is registered with a CNPJ.
func (c *Client) IsBusiness() bool {
	return c.Type == TypeBusiness
}

// fiscalCodeLabel names the tax identifier for conflict messages.
func (c *Client) fiscalCodeLabel() string {
	if c.IsBusiness() {
		return "CNPJ"
	}
	return "CPF"
}

// Conflict describes one violated uniqueness constraint.
type Conflict struct {
	Field   string
	Message string
}

// FindConflicts scans existing records for uniqueness violations against
// candidate, in a fixed order: id, fiscal code, then state registration
// (business records with a non-empty value only). The caller is responsible
// for excluding the candidate's own prior record when validating an update.
func FindConflicts(existing []Client, candidate *Client) []Conflict {
	var conflicts []Conflict

	for i := range existing {
		if existing[i].ID == candidate.ID {
			conflicts = append(conflicts, Conflict{
				Field:   "id",
				Message: fmt.Sprintf("id %q is already registered", candidate.ID),
			})
			break
		}
	}

	for i := range existing {
		if existing[i].FiscalCode == candidate.FiscalCode {
			conflicts = append(conflicts, Conflict{
				Field:   "fiscal_code",
				Message: fmt.Sprintf("%s is already registered", candidate.fiscalCodeLabel()),
			})
			break
		}
	}

	if candidate.IsBusiness() && candidate.StateRegistration != "" {
		for i := range existing {
			if existing[i].IsBusiness() && existing[i].StateRegistration == candidate.StateRegistration {
				conflicts = append(conflicts, Conflict{
					Field:   "state_registration",
					Message: "state registration is already registered",
				})
				break
			}
		}
	}

	return conflicts
}
