// Package sizeutil holds pure helpers for byte-size formatting and limit
// checks. The output format is fixed: existing chats contain replies in
// this exact shape, so it must not drift.
package sizeutil

import "fmt"

var units = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in human readable form ("1.50 MB").
// It divides by 1024 down to the largest unit where the value stays >= 1,
// formatted to two decimals. Zero renders as "0 B" exactly.
func FormatSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0 B"
	}

	size := float64(sizeBytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}

	return fmt.Sprintf("%.2f %s", size, units[i])
}

// ValidateUploadSize reports whether size fits within limit. The reason
// string names the formatted ceiling and is shown to the user verbatim.
func ValidateUploadSize(size, limit int64) (bool, string) {
	if size > limit {
		return false, fmt.Sprintf("File too large. Maximum upload size is %s", FormatSize(limit))
	}
	return true, ""
}

// ValidateDownloadSize reports whether size fits within the download
// ceiling. This ceiling is local policy only; Telegram does not limit
// re-sending a stored file the way it limits uploads.
func ValidateDownloadSize(size, limit int64) (bool, string) {
	if size > limit {
		return false, fmt.Sprintf("File too large for download. Maximum download size is %s", FormatSize(limit))
	}
	return true, ""
}
