package bot

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"tgstash/internal/domain"
)

// extractUpload pulls the file payload out of a message, covering every
// media kind Telegram delivers. Kinds without a user-visible name get one
// derived from the platform fingerprint, so re-sending the same photo
// collides on the name as well as on file_unique_id.
func extractUpload(msg *models.Message) (domain.Upload, bool) {
	userId := msg.From.ID

	switch {
	case msg.Document != nil:
		doc := msg.Document
		name := doc.FileName
		if name == "" {
			name = fmt.Sprintf("document_%s", doc.FileUniqueID)
		}
		return domain.Upload{
			UserId:       userId,
			FileId:       doc.FileID,
			FileName:     name,
			FileSize:     doc.FileSize,
			MimeType:     doc.MimeType,
			FileUniqueId: doc.FileUniqueID,
		}, true

	case len(msg.Photo) > 0:
		// The last entry is the largest rendition.
		photo := msg.Photo[len(msg.Photo)-1]
		return domain.Upload{
			UserId:       userId,
			FileId:       photo.FileID,
			FileName:     fmt.Sprintf("photo_%s.jpg", photo.FileUniqueID),
			FileSize:     int64(photo.FileSize),
			FileUniqueId: photo.FileUniqueID,
		}, true

	case msg.Video != nil:
		video := msg.Video
		name := video.FileName
		if name == "" {
			name = fmt.Sprintf("video_%s.mp4", video.FileUniqueID)
		}
		return domain.Upload{
			UserId:       userId,
			FileId:       video.FileID,
			FileName:     name,
			FileSize:     video.FileSize,
			MimeType:     video.MimeType,
			FileUniqueId: video.FileUniqueID,
		}, true

	case msg.Audio != nil:
		audio := msg.Audio
		name := audio.FileName
		if name == "" {
			name = fmt.Sprintf("audio_%s.mp3", audio.FileUniqueID)
		}
		return domain.Upload{
			UserId:       userId,
			FileId:       audio.FileID,
			FileName:     name,
			FileSize:     audio.FileSize,
			MimeType:     audio.MimeType,
			FileUniqueId: audio.FileUniqueID,
		}, true

	case msg.Voice != nil:
		voice := msg.Voice
		return domain.Upload{
			UserId:       userId,
			FileId:       voice.FileID,
			FileName:     fmt.Sprintf("voice_%s.ogg", voice.FileUniqueID),
			FileSize:     voice.FileSize,
			MimeType:     voice.MimeType,
			FileUniqueId: voice.FileUniqueID,
		}, true

	case msg.VideoNote != nil:
		note := msg.VideoNote
		return domain.Upload{
			UserId:       userId,
			FileId:       note.FileID,
			FileName:     fmt.Sprintf("video_note_%s.mp4", note.FileUniqueID),
			FileSize:     int64(note.FileSize),
			FileUniqueId: note.FileUniqueID,
		}, true
	}

	return domain.Upload{}, false
}
