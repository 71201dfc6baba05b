package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/canal-admin-api/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   dto.PageRequest
		want dto.PageRequest
	}{
		{"vacía usa el límite por defecto", dto.PageRequest{}, dto.PageRequest{Limit: dto.DefaultPageLimit}},
		{"límite negativo", dto.PageRequest{Limit: -5, Offset: 3}, dto.PageRequest{Limit: dto.DefaultPageLimit, Offset: 3}},
		{"recorta al máximo", dto.PageRequest{Limit: 500}, dto.PageRequest{Limit: dto.MaxPageLimit}},
		{"offset negativo", dto.PageRequest{Limit: 10, Offset: -1}, dto.PageRequest{Limit: 10}},
		{"válida sin cambios", dto.PageRequest{Limit: 50, Offset: 40}, dto.PageRequest{Limit: 50, Offset: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			assert.Equal(t, tt.want, got)
		})
	}
}
