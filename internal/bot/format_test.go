package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tgstash/internal/config"
	"tgstash/internal/domain"
)

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, "my\\_file\\_\\(1\\)\\[a\\].txt", escapeMarkdown("my_file_(1)[a].txt"))
	assert.Equal(t, "plain.txt", escapeMarkdown("plain.txt"))
}

func TestWelcomeText(t *testing.T) {
	text := welcomeText(config.DefaultPublic())

	assert.Contains(t, text, "📤 Max upload: 2.00 GB")
	assert.Contains(t, text, "📥 Max download: 10.00 GB")
	assert.Contains(t, text, "📁 Max files per user: 100")
}

func TestListText(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "📂 No files found.\n\nUse /upload to upload your first file!", listText(nil))
	})

	t.Run("with files", func(t *testing.T) {
		files := []domain.FileRecord{
			{FileName: "b_file.txt", FileSize: 2048, MimeType: "text/plain", UploadDate: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)},
			{FileName: "a.pdf", FileSize: 1024, MimeType: "application/pdf", UploadDate: time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)},
		}

		text := listText(files)

		assert.Contains(t, text, "📂 **Your Files** (2 files, 3.00 KB total):")
		assert.Contains(t, text, "1. **b\\_file.txt**")
		assert.Contains(t, text, "📅 Uploaded: 2025-03-14")
		assert.Contains(t, text, "2. **a.pdf**")
		assert.Contains(t, text, "💡 `/download filename` - Download a file")
	})
}

func TestDetailsText(t *testing.T) {
	record := &domain.FileRecord{
		Id:           7,
		FileName:     "report_final.pdf",
		FileSize:     1572864,
		MimeType:     "application/pdf",
		UploadDate:   time.Date(2025, 3, 14, 10, 30, 45, 0, time.UTC),
		FileId:       "BQACAgII",
		FileUniqueId: "AgADBQAC",
	}

	text := detailsText(record)

	assert.Contains(t, text, "📁 **File Details: report\\_final.pdf**")
	assert.Contains(t, text, "📊 **Size:** 1.50 MB")
	assert.Contains(t, text, "📅 **Upload Date:** 2025-03-14 10:30:45")
	assert.Contains(t, text, "🆔 **File ID:** `BQACAgII`")
	assert.Contains(t, text, "📋 **Database ID:** 7")
}

func TestStatsText(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		text := statsText(&domain.StorageStats{}, 100)

		assert.Contains(t, text, "📂 No files stored yet")
		assert.Contains(t, text, "💾 Total storage used: 0 B")
		assert.Contains(t, text, "📁 Files remaining: 100")
	})

	t.Run("populated, types sorted by mime", func(t *testing.T) {
		stats := &domain.StorageStats{
			TotalFiles:     3,
			TotalSize:      3_005_002_000,
			RemainingFiles: 97,
			TypeCounts:     map[string]int{"video/mp4": 1, "application/pdf": 2},
			Largest: []domain.FileRecord{
				{FileName: "C", FileSize: 3_000_000_000},
				{FileName: "B", FileSize: 5_000_000},
				{FileName: "A", FileSize: 2000},
			},
		}

		text := statsText(stats, 100)

		assert.Contains(t, text, "📂 **Total Files:** 3/100")
		assert.Contains(t, text, "💾 **Total Storage Used:** 2.80 GB")
		assert.Contains(t, text, "📁 **Files Remaining:** 97")
		pdfIdx := strings.Index(text, "application/pdf")
		mp4Idx := strings.Index(text, "video/mp4")
		assert.GreaterOrEqual(t, pdfIdx, 0)
		assert.GreaterOrEqual(t, mp4Idx, 0)
		assert.Less(t, pdfIdx, mp4Idx, "mime types should be listed alphabetically")
		assert.Contains(t, text, "1. C (2.79 GB)")
		assert.Contains(t, text, "2. B (4.77 MB)")
		assert.Contains(t, text, "3. A (1.95 KB)")
	})
}
