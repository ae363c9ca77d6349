package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/service"
)

// ViaCepName identifies the ViaCEP provider in lookup results.
const ViaCepName = "viacep"

// viaCepAddress is the flat ViaCEP payload. Numeric codes arrive as strings.
type viaCepAddress struct {
	Cep         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	IBGE        string          `json:"ibge"`
	DDD         string          `json:"ddd"`
	Erro        json.RawMessage `json:"erro,omitempty"`
}

// notFound reports the ViaCEP miss marker, sent either as a boolean or as the string "true".
func (a *viaCepAddress) notFound() bool {
	marker := bytes.TrimSpace(a.Erro)

	return bytes.Equal(marker, []byte("true")) || bytes.Equal(marker, []byte(`"true"`))
}

type viaCepProvider struct {
	baseURL string
	client  *http.Client
}

// NewViaCepProvider creates the ViaCEP adapter. ViaCEP needs no credentials.
func NewViaCepProvider(baseURL string, client *http.Client) (service.AddressProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, service.NewConfigurationError(ViaCepName, "base URL is required")
	}
	if client == nil {
		return nil, service.NewConfigurationError(ViaCepName, "HTTP client is required")
	}

	return &viaCepProvider{baseURL: baseURL, client: client}, nil
}

func (p *viaCepProvider) Name() string {
	return ViaCepName
}

func (p *viaCepProvider) Resolve(ctx context.Context, zipcode entity.Zipcode) (*entity.Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", p.baseURL, zipcode)

	var payload viaCepAddress
	if err := getJSON(ctx, p.client, ViaCepName, url, nil, &payload); err != nil {
		return nil, err
	}

	if payload.notFound() {
		return nil, service.ErrAddressMiss
	}

	return payload.toAddress(zipcode)
}

func (a *viaCepAddress) toAddress(requested entity.Zipcode) (*entity.Address, error) {
	zipcode := requested
	if a.Cep != "" {
		parsed, err := entity.ParseZipcode(a.Cep)
		if err != nil {
			return nil, malformed(ViaCepName, "invalid cep %q", a.Cep)
		}
		zipcode = parsed
	}

	acronym, ok := entity.ParseStateAcronym(a.UF)
	if !ok {
		return nil, malformed(ViaCepName, "unknown state %q", a.UF)
	}

	ibge, err := strconv.Atoi(strings.TrimSpace(a.IBGE))
	if err != nil || ibge <= 0 {
		return nil, malformed(ViaCepName, "invalid ibge %q", a.IBGE)
	}

	var ddd *int
	if trimmed := strings.TrimSpace(a.DDD); trimmed != "" {
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, malformed(ViaCepName, "invalid ddd %q", a.DDD)
		}
		ddd = &n
	}

	return &entity.Address{
		Zipcode: zipcode,
		State:   entity.NewState(acronym),
		City: entity.City{
			IBGE: ibge,
			Name: a.Localidade,
			DDD:  ddd,
		},
		Neighborhood: a.Bairro,
		Complement:   entity.JoinComplement(a.Logradouro, a.Complemento),
	}, nil
}
