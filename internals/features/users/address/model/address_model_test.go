package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSnapshot(t *testing.T) {
	postal := "55281"
	a := AddressModel{
		AddressRecipient:  "Budi Santoso",
		AddressLine:       "Jl. Malioboro No. 10",
		AddressCity:       "Yogyakarta",
		AddressProvince:   "DI Yogyakarta",
		AddressPostalCode: &postal,
	}
	assert.Equal(t,
		"Budi Santoso, Jl. Malioboro No. 10, Yogyakarta, DI Yogyakarta, 55281",
		a.FormatSnapshot())
}

func TestFormatSnapshot_TanpaKodePos(t *testing.T) {
	a := AddressModel{
		AddressRecipient: "Budi Santoso",
		AddressLine:      "Jl. Malioboro No. 10",
		AddressCity:      "Yogyakarta",
		AddressProvince:  "DI Yogyakarta",
	}
	assert.Equal(t,
		"Budi Santoso, Jl. Malioboro No. 10, Yogyakarta, DI Yogyakarta",
		a.FormatSnapshot())

	kosong := "  "
	a.AddressPostalCode = &kosong
	assert.NotContains(t, a.FormatSnapshot(), "  ,")
}
