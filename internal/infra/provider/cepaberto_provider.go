package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/service"
)

// CepAbertoName identifies the CEP Aberto provider in lookup results.
const CepAbertoName = "cepaberto"

type cepAbertoCity struct {
	DDD  *int   `json:"ddd"`
	IBGE string `json:"ibge"`
	Nome string `json:"nome"`
}

type cepAbertoState struct {
	Sigla string `json:"sigla"`
}

// cepAbertoAddress is the nested CEP Aberto payload. An unknown zipcode yields an empty object.
type cepAbertoAddress struct {
	Altitude    *float64        `json:"altitude"`
	Cep         string          `json:"cep"`
	Latitude    string          `json:"latitude"`
	Longitude   string          `json:"longitude"`
	Logradouro  string          `json:"logradouro"`
	Bairro      string          `json:"bairro"`
	Complemento string          `json:"complemento"`
	Cidade      *cepAbertoCity  `json:"cidade"`
	Estado      *cepAbertoState `json:"estado"`
}

func (a *cepAbertoAddress) empty() bool {
	return a.Cep == "" && a.Cidade == nil && a.Estado == nil
}

type cepAbertoProvider struct {
	baseURL string
	header  http.Header
	client  *http.Client
}

// NewCepAbertoProvider creates the CEP Aberto adapter. A missing token is a configuration error.
func NewCepAbertoProvider(baseURL, token string, client *http.Client) (service.AddressProvider, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, service.NewConfigurationError(CepAbertoName, "token is required")
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, service.NewConfigurationError(CepAbertoName, "base URL is required")
	}
	if client == nil {
		return nil, service.NewConfigurationError(CepAbertoName, "HTTP client is required")
	}

	header := http.Header{}
	header.Set("Authorization", "Token token="+token)

	return &cepAbertoProvider{baseURL: baseURL, header: header, client: client}, nil
}

func (p *cepAbertoProvider) Name() string {
	return CepAbertoName
}

func (p *cepAbertoProvider) Resolve(ctx context.Context, zipcode entity.Zipcode) (*entity.Address, error) {
	endpoint := fmt.Sprintf("%s/api/v3/cep?%s", p.baseURL, url.Values{"cep": {zipcode.String()}}.Encode())

	var payload cepAbertoAddress
	if err := getJSON(ctx, p.client, CepAbertoName, endpoint, p.header, &payload); err != nil {
		return nil, err
	}

	if payload.empty() {
		return nil, service.ErrAddressMiss
	}

	return payload.toAddress(zipcode)
}

func (a *cepAbertoAddress) toAddress(requested entity.Zipcode) (*entity.Address, error) {
	if a.Cidade == nil || a.Estado == nil {
		return nil, malformed(CepAbertoName, "payload without city or state")
	}

	zipcode := requested
	if a.Cep != "" {
		parsed, err := entity.ParseZipcode(a.Cep)
		if err != nil {
			return nil, malformed(CepAbertoName, "invalid cep %q", a.Cep)
		}
		zipcode = parsed
	}

	acronym, ok := entity.ParseStateAcronym(a.Estado.Sigla)
	if !ok {
		return nil, malformed(CepAbertoName, "unknown state %q", a.Estado.Sigla)
	}

	ibge, err := strconv.Atoi(strings.TrimSpace(a.Cidade.IBGE))
	if err != nil || ibge <= 0 {
		return nil, malformed(CepAbertoName, "invalid ibge %q", a.Cidade.IBGE)
	}

	coordinates, err := a.coordinates()
	if err != nil {
		return nil, err
	}

	return &entity.Address{
		Zipcode: zipcode,
		State:   entity.NewState(acronym),
		City: entity.City{
			IBGE: ibge,
			Name: a.Cidade.Nome,
			DDD:  a.Cidade.DDD,
		},
		Neighborhood: a.Bairro,
		Complement:   entity.JoinComplement(a.Logradouro, a.Complemento),
		Coordinates:  coordinates,
	}, nil
}

// coordinates parses the string-typed position; it is absent unless both axes are present.
func (a *cepAbertoAddress) coordinates() (*entity.Coordinates, error) {
	lat := strings.TrimSpace(a.Latitude)
	lng := strings.TrimSpace(a.Longitude)
	if lat == "" || lng == "" {
		return nil, nil
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, malformed(CepAbertoName, "invalid latitude %q", a.Latitude)
	}

	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil, malformed(CepAbertoName, "invalid longitude %q", a.Longitude)
	}

	return &entity.Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  a.Altitude,
	}, nil
}
