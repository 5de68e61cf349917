package slug_test

import (
	"errors"
	"testing"

	"professionals-api/internal/slug"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"Société Générale", "societe-generale"},
		{"  Développeur   Go / Backend!! ", "developpeur-go-backend"},
		{"Stage PFE 2025", "stage-pfe-2025"},
		{"---", ""},
		{"日本", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}

func TestMake_TruncatesLongInput(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "word "
	}
	got := slug.Make(long)
	assert.LessOrEqual(t, len(got), 80)
	assert.NotEqual(t, '-', rune(got[len(got)-1]))
}

func TestUnique(t *testing.T) {
	existing := map[string]bool{"acme": true, "acme-2": true}
	got, err := slug.Unique("acme", func(c string) (bool, error) { return existing[c], nil })
	require.NoError(t, err)
	assert.Equal(t, "acme-3", got)

	got, err = slug.Unique("", func(c string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, "item", got)

	boom := errors.New("db down")
	_, err = slug.Unique("acme", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
