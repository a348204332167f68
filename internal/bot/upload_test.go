package bot

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgstash/internal/domain"
)

func TestExtractUpload(t *testing.T) {
	msg := func(fill func(m *models.Message)) *models.Message {
		m := &models.Message{From: &models.User{ID: 42}}
		fill(m)
		return m
	}

	testCases := []struct {
		name     string
		message  *models.Message
		expected domain.Upload
	}{
		{
			name: "document keeps platform name and mime",
			message: msg(func(m *models.Message) {
				m.Document = &models.Document{
					FileID: "doc-id", FileUniqueID: "uniq-doc",
					FileName: "report.pdf", MimeType: "application/pdf", FileSize: 2048,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "doc-id", FileName: "report.pdf",
				FileSize: 2048, MimeType: "application/pdf", FileUniqueId: "uniq-doc",
			},
		},
		{
			name: "unnamed document falls back to fingerprint name",
			message: msg(func(m *models.Message) {
				m.Document = &models.Document{
					FileID: "doc-id", FileUniqueID: "uniq-doc", FileSize: 2048,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "doc-id", FileName: "document_uniq-doc",
				FileSize: 2048, FileUniqueId: "uniq-doc",
			},
		},
		{
			name: "photo takes the largest rendition",
			message: msg(func(m *models.Message) {
				m.Photo = []models.PhotoSize{
					{FileID: "small", FileUniqueID: "uniq-small", FileSize: 100},
					{FileID: "large", FileUniqueID: "uniq-large", FileSize: 900},
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "large", FileName: "photo_uniq-large.jpg",
				FileSize: 900, FileUniqueId: "uniq-large",
			},
		},
		{
			name: "video keeps platform name",
			message: msg(func(m *models.Message) {
				m.Video = &models.Video{
					FileID: "vid-id", FileUniqueID: "uniq-vid",
					FileName: "clip.mov", MimeType: "video/quicktime", FileSize: 4096,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "vid-id", FileName: "clip.mov",
				FileSize: 4096, MimeType: "video/quicktime", FileUniqueId: "uniq-vid",
			},
		},
		{
			name: "unnamed video falls back to fingerprint name",
			message: msg(func(m *models.Message) {
				m.Video = &models.Video{
					FileID: "vid-id", FileUniqueID: "uniq-vid",
					MimeType: "video/mp4", FileSize: 4096,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "vid-id", FileName: "video_uniq-vid.mp4",
				FileSize: 4096, MimeType: "video/mp4", FileUniqueId: "uniq-vid",
			},
		},
		{
			name: "audio keeps platform name",
			message: msg(func(m *models.Message) {
				m.Audio = &models.Audio{
					FileID: "aud-id", FileUniqueID: "uniq-aud",
					FileName: "song.flac", MimeType: "audio/flac", FileSize: 8192,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "aud-id", FileName: "song.flac",
				FileSize: 8192, MimeType: "audio/flac", FileUniqueId: "uniq-aud",
			},
		},
		{
			name: "unnamed audio falls back to fingerprint name",
			message: msg(func(m *models.Message) {
				m.Audio = &models.Audio{
					FileID: "aud-id", FileUniqueID: "uniq-aud",
					MimeType: "audio/mpeg", FileSize: 8192,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "aud-id", FileName: "audio_uniq-aud.mp3",
				FileSize: 8192, MimeType: "audio/mpeg", FileUniqueId: "uniq-aud",
			},
		},
		{
			name: "voice derives name and keeps mime",
			message: msg(func(m *models.Message) {
				m.Voice = &models.Voice{
					FileID: "voice-id", FileUniqueID: "uniq-voice",
					MimeType: "audio/ogg", FileSize: 512,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "voice-id", FileName: "voice_uniq-voice.ogg",
				FileSize: 512, MimeType: "audio/ogg", FileUniqueId: "uniq-voice",
			},
		},
		{
			name: "video note derives name",
			message: msg(func(m *models.Message) {
				m.VideoNote = &models.VideoNote{
					FileID: "note-id", FileUniqueID: "uniq-note", FileSize: 1024,
				}
			}),
			expected: domain.Upload{
				UserId: 42, FileId: "note-id", FileName: "video_note_uniq-note.mp4",
				FileSize: 1024, FileUniqueId: "uniq-note",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			upload, ok := extractUpload(tc.message)

			require.True(t, ok)
			assert.Equal(t, tc.expected, upload)
		})
	}

	t.Run("message without a file payload", func(t *testing.T) {
		_, ok := extractUpload(msg(func(m *models.Message) { m.Text = "/list" }))
		assert.False(t, ok)
	})
}
