package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cepcache/internal/delivery/api/response"
	"cepcache/internal/delivery/api/validator"
	"cepcache/internal/domain/entity"
	domainerrors "cepcache/internal/domain/errors"
	"cepcache/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MaxPageSize caps page_size on address lookups.
const MaxPageSize = 100

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// LookupAddressesRequest represents the query string of an address lookup
type LookupAddressesRequest struct {
	Zipcode      string `query:"zipcode" json:"zipcode" validate:"omitempty,zipcode"`
	Neighborhood string `query:"neighborhood" json:"neighborhood" validate:"omitempty,max=255"`
	Complement   string `query:"complement" json:"complement" validate:"omitempty,max=255"`
	City         int    `query:"city" json:"city" validate:"omitempty,gt=0"`
	State        string `query:"state" json:"state" validate:"omitempty,state_acronym"`
	PageSize     int    `query:"page_size" json:"page_size" validate:"omitempty,gte=1,lte=100"`
	PageNumber   int    `query:"page_number" json:"page_number" validate:"omitempty,gte=1"`
}

// CoordinatesRequest represents a geocoded position in a request body
type CoordinatesRequest struct {
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Altitude  *float64 `json:"altitude"`
}

// InsertAddressRequest represents the request body for storing an address
type InsertAddressRequest struct {
	Zipcode      int                 `json:"zipcode" validate:"required,gt=1000000,lt=99999999"`
	State        string              `json:"state" validate:"required,state_acronym"`
	CityIBGE     int                 `json:"city_ibge" validate:"required,gt=0"`
	Neighborhood string              `json:"neighborhood" validate:"required,max=255"`
	Complement   *string             `json:"complement" validate:"omitempty,max=255"`
	Coordinates  *CoordinatesRequest `json:"coordinates" validate:"omitempty"`
}

// AddressResponse is the wire form of an address. Zipcodes are always 8 digits.
type AddressResponse struct {
	Zipcode      string              `json:"zipcode"`
	State        entity.State        `json:"state"`
	City         entity.City         `json:"city"`
	Neighborhood string              `json:"neighborhood"`
	Complement   *string             `json:"complement,omitempty"`
	Coordinates  *entity.Coordinates `json:"coordinates,omitempty"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

// LookupResponse is the wire form of a lookup result
type LookupResponse struct {
	Addresses []AddressResponse `json:"addresses"`
	Provider  string            `json:"provider"`
}

// LookupAddresses handles filtered lookups, racing providers when a zipcode is not stored
func (h *AddressHandler) LookupAddresses(c echo.Context) error {
	var req LookupAddressesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lookup parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	filter, err := req.toFilter()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.lookup(c, filter, entity.NewPage(req.PageSize, req.PageNumber))
}

// GetAddressByZipcode handles the zipcode-only shortcut
func (h *AddressHandler) GetAddressByZipcode(c echo.Context) error {
	zipcode, err := entity.ParseZipcode(c.Param("zipcode"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidZipcode.WithDetails(err.Error()))
	}

	return h.lookup(c, entity.AddressFilter{Zipcode: &zipcode}, entity.NewPage(0, 0))
}

func (h *AddressHandler) lookup(c echo.Context, filter entity.AddressFilter, page entity.Page) error {
	result, err := h.addressUC.Lookup(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLookupResponse(result))
}

// InsertAddress handles storing a client-submitted address
func (h *AddressHandler) InsertAddress(c echo.Context) error {
	var req InsertAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	acronym, _ := entity.ParseStateAcronym(req.State)
	input := &usecase.InsertAddressInput{
		Zipcode:      entity.Zipcode(req.Zipcode),
		StateAcronym: acronym,
		CityIBGE:     req.CityIBGE,
		Neighborhood: req.Neighborhood,
		Complement:   req.Complement,
	}
	if req.Coordinates != nil {
		input.Coordinates = &entity.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
			Altitude:  req.Coordinates.Altitude,
		}
	}

	address, err := h.addressUC.Insert(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

func (req *LookupAddressesRequest) toFilter() (entity.AddressFilter, error) {
	var filter entity.AddressFilter

	if req.Zipcode != "" {
		zipcode, err := entity.ParseZipcode(req.Zipcode)
		if err != nil {
			return filter, domainerrors.ErrInvalidZipcode.WithDetails(err.Error())
		}
		filter.Zipcode = &zipcode
	}
	if req.Neighborhood != "" {
		filter.Neighborhood = &req.Neighborhood
	}
	if req.Complement != "" {
		filter.Complement = &req.Complement
	}
	if req.City > 0 {
		filter.CityIBGE = &req.City
	}
	if req.State != "" {
		acronym, _ := entity.ParseStateAcronym(req.State)
		filter.StateAcronym = &acronym
	}

	return filter, nil
}

func toLookupResponse(result *usecase.LookupResult) LookupResponse {
	addresses := make([]AddressResponse, 0, len(result.Addresses))
	for _, address := range result.Addresses {
		addresses = append(addresses, toAddressResponse(address))
	}

	return LookupResponse{Addresses: addresses, Provider: result.Provider}
}

func toAddressResponse(address *entity.Address) AddressResponse {
	resp := AddressResponse{
		Zipcode:      address.Zipcode.String(),
		State:        address.State,
		City:         address.City,
		Neighborhood: address.Neighborhood,
		Complement:   address.Complement,
		Coordinates:  address.Coordinates,
	}
	if !address.UpdatedAt.IsZero() {
		updatedAt := address.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
