package domain

import "time"

type (
	UserId   = int64
	FileId   = string
	FileName = string
)

// UnknownMimeType is stored when the platform does not report a MIME type.
const UnknownMimeType = "Unknown"

// FileRecord is a stored metadata row describing one user-uploaded file.
// The file bytes themselves stay on Telegram's servers; FileId is the
// handle used to re-send them. Records are immutable between insert and
// delete.
type FileRecord struct {
	Id           int64     `json:"id"`
	UserId       UserId    `json:"user_id"`
	FileId       FileId    `json:"file_id"`
	FileName     FileName  `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	UploadDate   time.Time `json:"upload_date"`
	FileUniqueId string    `json:"file_unique_id,omitempty"`
}

// Upload is the caller-supplied part of a new FileRecord.
// Id and UploadDate are assigned by the store on insert.
type Upload struct {
	UserId       UserId
	FileId       FileId
	FileName     FileName
	FileSize     int64
	MimeType     string
	FileUniqueId string
}

// StorageStats aggregates a user's stored files for the /stats command.
type StorageStats struct {
	TotalFiles     int
	TotalSize      int64
	RemainingFiles int
	// TypeCounts groups files by exact MIME string; files without a
	// reported type are grouped under UnknownMimeType.
	TypeCounts map[string]int
	// Largest holds up to 3 files ordered by size descending. Ties keep
	// the retrieval order (newest first).
	Largest []FileRecord
}
