// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedUintValue(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  uint64
		assertErr require.ErrorAssertionFunc
	}{
		{
			name:      "in range",
			input:     "30",
			expected:  30,
			assertErr: require.NoError,
		},
		{
			name:  "below min",
			input: "0",
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrValueOutOfRange)
			},
		},
		{
			name:  "above max",
			input: "601",
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrValueOutOfRange)
			},
		},
		{
			name:      "not a number",
			input:     "many",
			assertErr: require.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value uint64

			flagValue := limitedUintValue{
				Value: &value,
				min:   1,
				max:   600,
			}

			err := flagValue.Set(tt.input)
			tt.assertErr(t, err)

			if err == nil {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}
