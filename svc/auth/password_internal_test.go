package auth

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewDummyHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cost     int
		wantCost int
		warns    bool
	}{
		{"configured cost", bcrypt.MinCost, bcrypt.MinCost, false},
		{"invalid cost falls back", bcrypt.MaxCost + 1, bcrypt.DefaultCost, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			hash := newDummyHash(tt.cost, log)
			require.NotEmpty(t, hash)
			cost, err := bcrypt.Cost(hash)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
			assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte(dummyPassword)))
			assert.Equal(t, tt.warns, bytes.Contains(buf.Bytes(), []byte("using default cost")))
		})
	}
}
