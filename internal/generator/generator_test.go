// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"minimum", MinLength, false},
		{"default", DefaultLength, false},
		{"maximum", MaxLength, false},
		{"too short", MinLength - 1, true},
		{"too long", MaxLength + 1, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Length = tt.length

			got, err := Generate(opts)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLength)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.length)
		})
	}
}

func TestGenerate_UsesOnlyCharset(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		mustExclude string
	}{
		{"letters only", Options{Length: 64}, numbers + symbols},
		{"letters and numbers", Options{Length: 64, Numbers: true}, symbols},
		{"no look-alikes", Options{Length: 64, Numbers: true, Symbols: true, ExcludeLookalikes: true}, lookalikes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charset := tt.opts.Charset()
			for range 20 {
				got, err := Generate(tt.opts)
				require.NoError(t, err)
				for _, r := range got {
					assert.True(t, strings.ContainsRune(charset, r), "unexpected %q", r)
				}
				assert.False(t, strings.ContainsAny(got, tt.mustExclude), got)
			}
		})
	}
}

func TestOptions_Charset(t *testing.T) {
	assert.Equal(t, letters, Options{}.Charset())
	assert.Equal(t, letters+numbers+symbols, Options{Numbers: true, Symbols: true}.Charset())

	noLookalikes := Options{Numbers: true, ExcludeLookalikes: true}.Charset()
	assert.Len(t, noLookalikes, len(letters)+len(numbers)-len(lookalikes))
	assert.False(t, strings.ContainsAny(noLookalikes, lookalikes))
}

func TestGenerate_Differs(t *testing.T) {
	a, err := Generate(DefaultOptions())
	require.NoError(t, err)
	b, err := Generate(DefaultOptions())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_RandomFailure(t *testing.T) {
	g := &Generator{random: failingReader{}}

	got, err := g.Generate(DefaultOptions())

	assert.ErrorIs(t, err, ErrRandom)
	assert.Empty(t, got)
}
