package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Luka Dončić", "Luka Doncic"},
		{"Nikola Jokić", "Nikola Jokic"},
		{"Bogdan Bogdanović", "Bogdan Bogdanovic"},
		{"Jusuf Nurkić", "Jusuf Nurkic"},
		{"Dāvis Bertāns", "Dāvis Bertāns"}, // macrons are not in the table
		{"José Alvarado", "Jose Alvarado"},
		{"LeBron James", "LeBron James"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Luka Dončić", "Kristaps Porziņģis", "Plain Name", "ĆČŠŽĐ ćčšžđ"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
