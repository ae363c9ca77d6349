package provider

import (
	"context"
	"io"
	"net/http"
	"testing"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cepAbertoSePayload = `{
	"altitude": 760.0,
	"cep": "01001000",
	"latitude": "-23.5479099981",
	"longitude": "-46.636",
	"logradouro": "Praça da Sé",
	"bairro": "Sé",
	"complemento": "- lado ímpar",
	"cidade": {"ddd": 11, "ibge": "3550308", "nome": "São Paulo"},
	"estado": {"sigla": "SP"}
}`

func TestCepAbertoProvider_Resolve(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("cep")
		_, _ = io.WriteString(w, cepAbertoSePayload)
	})

	p, err := NewCepAbertoProvider(server.URL, "valid_token", server.Client())
	require.NoError(t, err)
	assert.Equal(t, CepAbertoName, p.Name())

	address, err := p.Resolve(context.Background(), entity.Zipcode(1001000))
	require.NoError(t, err)

	assert.Equal(t, "Token token=valid_token", gotAuth)
	assert.Equal(t, "/api/v3/cep", gotPath)
	assert.Equal(t, "01001000", gotQuery)

	assert.Equal(t, entity.Zipcode(1001000), address.Zipcode)
	assert.Equal(t, entity.StateSP, address.State.Acronym)
	assert.Equal(t, 3550308, address.City.IBGE)
	require.NotNil(t, address.City.DDD)
	assert.Equal(t, 11, *address.City.DDD)
	assert.Equal(t, "Sé", address.Neighborhood)
	require.NotNil(t, address.Complement)
	assert.Equal(t, "Praça da Sé - lado ímpar", *address.Complement)

	require.NotNil(t, address.Coordinates)
	assert.InDelta(t, -23.5479099981, address.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, -46.636, address.Coordinates.Longitude, 1e-9)
	require.NotNil(t, address.Coordinates.Altitude)
	assert.InDelta(t, 760.0, *address.Coordinates.Altitude, 1e-9)
}

func TestCepAbertoProvider_Resolve_EmptyObjectIsMiss(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	p, err := NewCepAbertoProvider(server.URL, "valid_token", server.Client())
	require.NoError(t, err)

	_, err = p.Resolve(context.Background(), entity.Zipcode(99999998))
	assert.ErrorIs(t, err, service.ErrAddressMiss)
}

func TestCepAbertoProvider_Resolve_TransportFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"invalid token"}`},
		{name: "missing city", status: http.StatusOK, body: `{"cep":"01001000","estado":{"sigla":"SP"}}`},
		{name: "invalid latitude", status: http.StatusOK, body: `{"cep":"01001000","latitude":"north","longitude":"-46.6","cidade":{"ibge":"3550308","nome":"São Paulo"},"estado":{"sigla":"SP"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			p, err := NewCepAbertoProvider(server.URL, "valid_token", server.Client())
			require.NoError(t, err)

			_, err = p.Resolve(context.Background(), entity.Zipcode(1001000))

			var transportErr *service.TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, CepAbertoName, transportErr.Provider)
			assert.Equal(t, tt.status, transportErr.StatusCode)
		})
	}
}

func TestCepAbertoProvider_Resolve_WithoutCoordinates(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"cep":"01001000","bairro":"Sé","cidade":{"ibge":"3550308","nome":"São Paulo"},"estado":{"sigla":"SP"}}`)
	})

	p, err := NewCepAbertoProvider(server.URL, "valid_token", server.Client())
	require.NoError(t, err)

	address, err := p.Resolve(context.Background(), entity.Zipcode(1001000))
	require.NoError(t, err)
	assert.Nil(t, address.Coordinates)
	assert.Nil(t, address.City.DDD)
	assert.Nil(t, address.Complement)
}

func TestNewCepAbertoProvider_MissingToken(t *testing.T) {
	for _, token := range []string{"", "   "} {
		p, err := NewCepAbertoProvider("https://www.cepaberto.com", token, http.DefaultClient)
		assert.Nil(t, p)

		var cfgErr *service.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, CepAbertoName, cfgErr.Provider)
	}
}
