package service

import (
	stderrors "errors"
	"fmt"
	"sort"

	"tgstash/internal/config"
	"tgstash/internal/domain"
	internal_errors "tgstash/internal/errors"
	"tgstash/internal/sizeutil"
)

// to mock service in tests
type FileService interface {
	Upload(upload domain.Upload) (*domain.FileRecord, error)
	List(userId domain.UserId) ([]domain.FileRecord, error)
	Details(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error)
	Stats(userId domain.UserId) (*domain.StorageStats, error)
	Download(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error)
	Delete(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error)
}

type FileStorage interface {
	InsertFile(upload domain.Upload) (*domain.FileRecord, error)
	FilesByUser(userId domain.UserId) ([]domain.FileRecord, error)
	FileByName(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error)
	DeleteFile(userId domain.UserId, fileName domain.FileName) error
	FileCount(userId domain.UserId) (int, error)
}

type Files struct {
	storage FileStorage
	cfg     config.Public
}

func NewFiles(storage FileStorage, cfg config.Public) FileService {
	return &Files{storage, cfg}
}

// Upload enforces, in order: the per-user record quota, the platform
// upload ceiling, and name uniqueness. The name pre-check only buys a
// friendlier message; a racing insert still loses at the constraint.
func (f *Files) Upload(upload domain.Upload) (*domain.FileRecord, error) {
	count, err := f.storage.FileCount(upload.UserId)
	if err != nil {
		return nil, err
	}
	if count >= f.cfg.MaxFilesPerUser {
		return nil, &internal_errors.ValidationError{
			Message: fmt.Sprintf("You have reached the maximum file limit (%d files).\nPlease delete some files before uploading new ones.", f.cfg.MaxFilesPerUser),
		}
	}

	if ok, reason := sizeutil.ValidateUploadSize(upload.FileSize, f.cfg.TelegramFileSizeLimit); !ok {
		return nil, &internal_errors.ValidationError{Message: reason}
	}

	_, err = f.storage.FileByName(upload.UserId, upload.FileName)
	if err == nil {
		return nil, internal_errors.DuplicateName
	}
	if !stderrors.Is(err, internal_errors.NotFound) {
		return nil, err
	}

	return f.storage.InsertFile(upload)
}

func (f *Files) List(userId domain.UserId) ([]domain.FileRecord, error) {
	return f.storage.FilesByUser(userId)
}

func (f *Files) Details(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error) {
	return f.storage.FileByName(userId, fileName)
}

// Download looks the record up and applies the local download ceiling.
// Sending the bytes back is the transport's job; the record carries the
// file_id it needs.
func (f *Files) Download(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error) {
	record, err := f.storage.FileByName(userId, fileName)
	if err != nil {
		return nil, err
	}

	if ok, reason := sizeutil.ValidateDownloadSize(record.FileSize, f.cfg.MaxDownloadSize); !ok {
		return nil, &internal_errors.ValidationError{Message: reason}
	}

	return record, nil
}

// Delete removes the record and returns it so the reply can describe what
// was deleted.
func (f *Files) Delete(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error) {
	record, err := f.storage.FileByName(userId, fileName)
	if err != nil {
		return nil, err
	}

	if err := f.storage.DeleteFile(userId, fileName); err != nil {
		return nil, err
	}

	return record, nil
}

func (f *Files) Stats(userId domain.UserId) (*domain.StorageStats, error) {
	files, err := f.storage.FilesByUser(userId)
	if err != nil {
		return nil, err
	}

	stats := &domain.StorageStats{
		TotalFiles:     len(files),
		RemainingFiles: f.cfg.MaxFilesPerUser - len(files),
		TypeCounts:     make(map[string]int),
	}

	for _, file := range files {
		stats.TotalSize += file.FileSize
		mimeType := file.MimeType
		if mimeType == "" {
			mimeType = domain.UnknownMimeType
		}
		stats.TypeCounts[mimeType]++
	}

	// Stable sort keeps retrieval order (newest first) between equal sizes.
	largest := make([]domain.FileRecord, len(files))
	copy(largest, files)
	sort.SliceStable(largest, func(i, j int) bool {
		return largest[i].FileSize > largest[j].FileSize
	})
	if len(largest) > 3 {
		largest = largest[:3]
	}
	stats.Largest = largest

	return stats, nil
}
