package sizeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	gib = int64(1) << 30
	tib = int64(1) << 40
)

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "Zero", bytes: 0, expected: "0 B"},
		{name: "Bytes", bytes: 500, expected: "500.00 B"},
		{name: "Just Below KB", bytes: 1023, expected: "1023.00 B"},
		{name: "Exactly One KB", bytes: 1024, expected: "1.00 KB"},
		{name: "Fractional KB", bytes: 2000, expected: "1.95 KB"},
		{name: "Megabytes", bytes: 1572864, expected: "1.50 MB"},
		{name: "Large MB", bytes: 5_000_000, expected: "4.77 MB"},
		{name: "Gigabytes", bytes: 3_000_000_000, expected: "2.79 GB"},
		{name: "Exactly One TB", bytes: tib, expected: "1.00 TB"},
		{name: "Beyond TB Stays TB", bytes: 1024 * tib, expected: "1024.00 TB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatSize(tc.bytes))
		})
	}
}

func TestValidateUploadSize(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		ok, reason := ValidateUploadSize(100, 2*gib)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("exactly at limit", func(t *testing.T) {
		ok, reason := ValidateUploadSize(2*gib, 2*gib)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("over limit", func(t *testing.T) {
		ok, reason := ValidateUploadSize(3_000_000_000, 2*gib)
		assert.False(t, ok)
		assert.Equal(t, "File too large. Maximum upload size is 2.00 GB", reason)
	})
}

func TestValidateDownloadSize(t *testing.T) {
	t.Run("upload-oversized file still downloadable", func(t *testing.T) {
		ok, reason := ValidateDownloadSize(3_000_000_000, 10*gib)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("over limit", func(t *testing.T) {
		ok, reason := ValidateDownloadSize(11*gib, 10*gib)
		assert.False(t, ok)
		assert.Equal(t, "File too large for download. Maximum download size is 10.00 GB", reason)
	})
}
