// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords for new vault records.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 16

	letters    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numbers    = "0123456789"
	symbols    = "!@#$%^&*()_+~`|}{[]:;?><,./-="
	lookalikes = "l1IO0o"
)

var (
	ErrInvalidLength = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
	ErrRandom        = errors.New("failed to read random bytes")
)

// Options selects the alphabet and the length of a generated password.
type Options struct {
	Length            int
	Numbers           bool
	Symbols           bool
	ExcludeLookalikes bool
}

// DefaultOptions returns 16 characters with numbers and symbols and without
// look-alike characters.
func DefaultOptions() Options {
	return Options{
		Length:            DefaultLength,
		Numbers:           true,
		Symbols:           true,
		ExcludeLookalikes: true,
	}
}

// Charset returns the alphabet passwords are drawn from.
func (o Options) Charset() string {
	charset := letters
	if o.Numbers {
		charset += numbers
	}
	if o.Symbols {
		charset += symbols
	}
	if o.ExcludeLookalikes {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(lookalikes, r) {
				return -1
			}
			return r
		}, charset)
	}
	return charset
}

// Generator draws characters uniformly from the configured alphabet.
type Generator struct {
	random io.Reader
}

// New returns a Generator reading from crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// Generate returns a password built according to opts.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrInvalidLength
	}

	charset := opts.Charset()
	upper := big.NewInt(int64(len(charset)))

	var b strings.Builder
	b.Grow(opts.Length)
	for range opts.Length {
		n, err := rand.Int(g.random, upper)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandom, err)
		}
		b.WriteByte(charset[n.Int64()])
	}

	return b.String(), nil
}

// Generate is a shortcut for New().Generate(opts).
func Generate(opts Options) (string, error) {
	return New().Generate(opts)
}
