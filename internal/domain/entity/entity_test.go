package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZipcode(t *testing.T) {
	tests := []struct {
		raw     string
		want    Zipcode
		wantErr bool
	}{
		{raw: "01001000", want: 1001000},
		{raw: "01001-000", want: 1001000},
		{raw: " 1001001 ", want: 1001001},
		{raw: "99999998", want: 99999998},
		{raw: "01000000", wantErr: true},
		{raw: "99999999", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseZipcode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZipcode_String(t *testing.T) {
	assert.Equal(t, "01001000", Zipcode(1001000).String())
	assert.Equal(t, "70040010", Zipcode(70040010).String())
}

func TestParseStateAcronym(t *testing.T) {
	acronym, ok := ParseStateAcronym(" sp ")
	assert.True(t, ok)
	assert.Equal(t, StateSP, acronym)
	assert.Equal(t, "São Paulo", acronym.Name())

	_, ok = ParseStateAcronym("XX")
	assert.False(t, ok)

	assert.Len(t, stateNames, 27)
	assert.Equal(t, State{Acronym: StateDF, Name: "Distrito Federal"}, NewState(StateDF))
}

func TestJoinComplement(t *testing.T) {
	assert.Nil(t, JoinComplement("", "lado ímpar"))
	assert.Nil(t, JoinComplement("   ", ""))

	got := JoinComplement("Praça da Sé", "lado ímpar")
	require.NotNil(t, got)
	assert.Equal(t, "Praça da Sé lado ímpar", *got)

	got = JoinComplement("Praça da Sé", "")
	require.NotNil(t, got)
	assert.Equal(t, "Praça da Sé", *got)
}

func TestPage(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		number     int
		wantPage   Page
		wantOffset int
	}{
		{name: "defaults", wantPage: Page{Size: DefaultPageSize, Number: DefaultPageNumber}, wantOffset: 0},
		{name: "first page", size: 20, number: 1, wantPage: Page{Size: 20, Number: 1}, wantOffset: 0},
		{name: "third page", size: 20, number: 3, wantPage: Page{Size: 20, Number: 3}, wantOffset: 40},
		{name: "negative values", size: -5, number: -1, wantPage: Page{Size: DefaultPageSize, Number: DefaultPageNumber}, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.size, tt.number)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantOffset, page.Offset())
		})
	}
}

func TestAddressFilter_HasZipcode(t *testing.T) {
	zipcode := Zipcode(1001000)
	assert.True(t, AddressFilter{Zipcode: &zipcode}.HasZipcode())
	assert.False(t, AddressFilter{}.HasZipcode())
}
