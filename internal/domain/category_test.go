package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      []ResourceType
	}{
		{
			name:      "generic suite expands to all suite subtypes",
			requested: "SUITE",
			want:      []ResourceType{TypeStandardSuite, TypeStandardPlusSuite, TypeVIPSuite},
		},
		{
			name:      "boarding expands to suites and kennels",
			requested: "BOARDING",
			want: []ResourceType{
				TypeStandardSuite, TypeStandardPlusSuite, TypeVIPSuite, TypeKennel,
			},
		},
		{
			name:      "concrete type resolves to itself",
			requested: "STANDARD_SUITE",
			want:      []ResourceType{TypeStandardSuite},
		},
		{
			name:      "lowercase is normalized",
			requested: "vip_suite",
			want:      []ResourceType{TypeVIPSuite},
		},
		{
			name:      "spaces and hyphens are separators",
			requested: "standard plus-suite",
			want:      []ResourceType{TypeStandardPlusSuite},
		},
		{
			name:      "surrounding whitespace is ignored",
			requested: "  kennel  ",
			want:      []ResourceType{TypeKennel},
		},
		{
			name:      "unknown category resolves to nothing",
			requested: "PONY_STABLE",
			want:      nil,
		},
		{
			name:      "empty category resolves to nothing",
			requested: "",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCategory(tt.requested))
		})
	}
}

func TestResolveCategoryReturnsCopy(t *testing.T) {
	first := ResolveCategory("SUITE")
	first[0] = TypeKennel

	second := ResolveCategory("SUITE")
	assert.Equal(t, TypeStandardSuite, second[0])
}
