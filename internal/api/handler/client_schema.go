package handler

import (
	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// clientRequest is the JSON carried in the "client" part of the multipart
// form. Required-field checks live in the service so they apply to every
// caller, not just this transport.
type addressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	CityID       string `json:"city_id"`
	StateID      string `json:"state_id"`
}

type clientRequest struct {
	ID                string         `json:"id"`
	Type              string         `json:"type"`
	FiscalCode        string         `json:"fiscal_code"`
	Name              string         `json:"name"`
	Date              string         `json:"date"`
	Address           addressRequest `json:"address"`
	StateRegistration string         `json:"state_registration"`
	TradeName         string         `json:"trade_name"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		ID:         r.ID,
		Type:       domain.ClientType(r.Type),
		FiscalCode: r.FiscalCode,
		Name:       r.Name,
		Date:       r.Date,
		Address: domain.Address{
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Neighborhood: r.Address.Neighborhood,
			CityID:       r.Address.CityID,
			StateID:      r.Address.StateID,
		},
		StateRegistration: r.StateRegistration,
		TradeName:         r.TradeName,
	}
}

type clientMutationResponse struct {
	Message string         `json:"message"`
	Client  *domain.Client `json:"client"`
}
