package bot

import (
	"fmt"
	"sort"
	"strings"

	"tgstash/internal/config"
	"tgstash/internal/domain"
	"tgstash/internal/sizeutil"
)

// escapeMarkdown escapes the characters Telegram's legacy Markdown mode
// treats as formatting, so filenames render verbatim.
func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
	)
	return replacer.Replace(text)
}

func welcomeText(cfg config.Public) string {
	return fmt.Sprintf(
		"🚀 **Welcome to File Storage Bot!**\n\n"+
			"I can help you store and manage files using Telegram's servers.\n\n"+
			"**Available Commands:**\n"+
			"/upload - Upload a file (send any document)\n"+
			"/list - List your uploaded files\n"+
			"/details <filename> - Get detailed file information\n"+
			"/stats - Show your storage statistics\n"+
			"/download <filename> - Download a specific file\n"+
			"/delete <filename> - Delete a file\n"+
			"/help - Show this help message\n\n"+
			"**Limits:**\n"+
			"📤 Max upload: %s\n"+
			"📥 Max download: %s\n"+
			"📁 Max files per user: %d",
		sizeutil.FormatSize(cfg.TelegramFileSizeLimit),
		sizeutil.FormatSize(cfg.MaxDownloadSize),
		cfg.MaxFilesPerUser,
	)
}

func helpText() string {
	return "🤖 **File Storage Bot Help**\n\n" +
		"**How to use:**\n" +
		"1. Send any document to upload it\n" +
		"2. Use /list to see your files\n" +
		"3. Use /details filename for complete file info\n" +
		"4. Use /stats to see your storage usage\n" +
		"5. Use /download filename to get a file back\n" +
		"6. Use /delete filename to remove a file\n\n" +
		"**Features:**\n" +
		"✅ Store files up to 2GB each\n" +
		"✅ Download files up to 10GB\n" +
		"✅ Complete file metadata tracking\n" +
		"✅ Storage statistics\n" +
		"✅ Simple file management\n\n" +
		"**Tips:**\n" +
		"• File names are case-sensitive\n" +
		"• Files are stored on Telegram's servers\n" +
		"• Check /stats to monitor your usage"
}

func uploadInfoText(cfg config.Public) string {
	return fmt.Sprintf(
		"📤 **Upload a File**\n\n"+
			"To upload a file, simply send any document to this chat.\n\n"+
			"**Supported:**\n"+
			"• Documents\n"+
			"• Images\n"+
			"• Videos\n"+
			"• Audio files\n"+
			"• Any other file type\n\n"+
			"**Maximum size:** %s",
		sizeutil.FormatSize(cfg.TelegramFileSizeLimit),
	)
}

func listText(files []domain.FileRecord) string {
	if len(files) == 0 {
		return "📂 No files found.\n\nUse /upload to upload your first file!"
	}

	var totalSize int64
	for _, file := range files {
		totalSize += file.FileSize
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📂 **Your Files** (%d files, %s total):\n\n", len(files), sizeutil.FormatSize(totalSize))

	for i, file := range files {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, escapeMarkdown(file.FileName))
		fmt.Fprintf(&b, "   📊 Size: %s | 🎯 Type: %s\n", sizeutil.FormatSize(file.FileSize), file.MimeType)
		fmt.Fprintf(&b, "   📅 Uploaded: %s\n\n", file.UploadDate.Format("2006-01-02"))
	}

	b.WriteString("**Commands:**\n")
	b.WriteString("💡 `/download filename` - Download a file\n")
	b.WriteString("💡 `/details filename` - View complete file info\n")
	b.WriteString("💡 `/stats` - View storage statistics\n")
	b.WriteString("💡 `/delete filename` - Delete a file")

	return b.String()
}

func detailsText(record *domain.FileRecord) string {
	return fmt.Sprintf(
		"📁 **File Details: %s**\n\n"+
			"📊 **Size:** %s\n"+
			"🎯 **Type:** %s\n"+
			"📅 **Upload Date:** %s\n"+
			"🆔 **File ID:** `%s`\n"+
			"🔑 **Unique ID:** `%s`\n"+
			"📋 **Database ID:** %d\n\n"+
			"**File Actions:**\n"+
			"• Use /download to get this file\n"+
			"• Use /delete to remove this file",
		escapeMarkdown(record.FileName),
		sizeutil.FormatSize(record.FileSize),
		record.MimeType,
		record.UploadDate.Format("2006-01-02 15:04:05"),
		record.FileId,
		record.FileUniqueId,
		record.Id,
	)
}

func statsText(stats *domain.StorageStats, maxFiles int) string {
	if stats.TotalFiles == 0 {
		return fmt.Sprintf(
			"📊 **Your Storage Statistics**\n\n"+
				"📂 No files stored yet\n"+
				"💾 Total storage used: 0 B\n"+
				"📁 Files remaining: %d\n\n"+
				"Use /upload to start storing files!",
			maxFiles,
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Your Storage Statistics**\n\n")
	fmt.Fprintf(&b, "📂 **Total Files:** %d/%d\n", stats.TotalFiles, maxFiles)
	fmt.Fprintf(&b, "💾 **Total Storage Used:** %s\n", sizeutil.FormatSize(stats.TotalSize))
	fmt.Fprintf(&b, "📁 **Files Remaining:** %d\n\n", stats.RemainingFiles)

	b.WriteString("**File Types:**\n")
	mimeTypes := make([]string, 0, len(stats.TypeCounts))
	for mimeType := range stats.TypeCounts {
		mimeTypes = append(mimeTypes, mimeType)
	}
	sort.Strings(mimeTypes)
	for _, mimeType := range mimeTypes {
		fmt.Fprintf(&b, "• %s: %d files\n", mimeType, stats.TypeCounts[mimeType])
	}

	if len(stats.Largest) > 0 {
		b.WriteString("\n**Largest Files:**\n")
		for i, file := range stats.Largest {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, escapeMarkdown(file.FileName), sizeutil.FormatSize(file.FileSize))
		}
	}

	b.WriteString("\n💡 Use `/list` to see all files\n💡 Use `/details filename` for file info")

	return b.String()
}
