package sqlite

import (
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"tgstash/internal/domain"
	internal_errors "tgstash/internal/errors"
)

// InsertFile persists a new record, assigning id and upload date itself.
// A collision on file_unique_id maps to DuplicateFile, a collision on
// (user_id, file_name) to DuplicateName; the constraints are the source of
// truth even when callers pre-check.
func (s *Storage) InsertFile(upload domain.Upload) (*domain.FileRecord, error) {
	mimeType := upload.MimeType
	if mimeType == "" {
		mimeType = domain.UnknownMimeType
	}

	// NULL keeps the unique index from rejecting records the platform
	// issued no fingerprint for.
	var uniqueId sql.NullString
	if upload.FileUniqueId != "" {
		uniqueId = sql.NullString{String: upload.FileUniqueId, Valid: true}
	}

	uploadDate := time.Now().UTC()

	res, err := s.db.Exec(`
		INSERT INTO files (user_id, file_id, file_name, file_size, mime_type, upload_date, file_unique_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		upload.UserId, upload.FileId, upload.FileName, upload.FileSize, mimeType, uploadDate, uniqueId)
	if err != nil {
		return nil, mapConstraintError("insert file", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "insert file", Err: err}
	}

	return &domain.FileRecord{
		Id:           id,
		UserId:       upload.UserId,
		FileId:       upload.FileId,
		FileName:     upload.FileName,
		FileSize:     upload.FileSize,
		MimeType:     mimeType,
		UploadDate:   uploadDate,
		FileUniqueId: upload.FileUniqueId,
	}, nil
}

// FilesByUser returns all records for the user, most recent first. The id
// tiebreak keeps ordering stable for records inserted within the same
// timestamp.
func (s *Storage) FilesByUser(userId domain.UserId) ([]domain.FileRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, file_id, file_name, file_size, mime_type, upload_date, file_unique_id
		FROM files
		WHERE user_id = ?
		ORDER BY upload_date DESC, id DESC`, userId)
	if err != nil {
		return nil, &internal_errors.StorageError{Op: "list files", Err: err}
	}
	defer rows.Close()

	files := []domain.FileRecord{}
	for rows.Next() {
		record, err := scanFileRecord(rows)
		if err != nil {
			return nil, &internal_errors.StorageError{Op: "list files", Err: err}
		}
		files = append(files, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, &internal_errors.StorageError{Op: "list files", Err: err}
	}

	return files, nil
}

// FileByName does an exact, case-sensitive lookup.
func (s *Storage) FileByName(userId domain.UserId, fileName domain.FileName) (*domain.FileRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, file_id, file_name, file_size, mime_type, upload_date, file_unique_id
		FROM files
		WHERE user_id = ? AND file_name = ?`, userId, fileName)

	record, err := scanFileRecord(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound
		}
		return nil, &internal_errors.StorageError{Op: "find file", Err: err}
	}

	return record, nil
}

// DeleteFile removes at most one record. A miss is reported as NotFound;
// callers decide whether that is an error.
func (s *Storage) DeleteFile(userId domain.UserId, fileName domain.FileName) error {
	res, err := s.db.Exec(`DELETE FROM files WHERE user_id = ? AND file_name = ?`, userId, fileName)
	if err != nil {
		return &internal_errors.StorageError{Op: "delete file", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &internal_errors.StorageError{Op: "delete file", Err: err}
	}
	if affected == 0 {
		return internal_errors.NotFound
	}

	return nil
}

// FileCount returns the user's live record count for quota enforcement.
func (s *Storage) FileCount(userId domain.UserId) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM files WHERE user_id = ?`, userId).Scan(&count)
	if err != nil {
		return 0, &internal_errors.StorageError{Op: "count files", Err: err}
	}
	return count, nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanFileRecord(row scannable) (*domain.FileRecord, error) {
	var record domain.FileRecord
	var uniqueId sql.NullString

	err := row.Scan(&record.Id, &record.UserId, &record.FileId, &record.FileName,
		&record.FileSize, &record.MimeType, &record.UploadDate, &uniqueId)
	if err != nil {
		return nil, err
	}

	record.FileUniqueId = uniqueId.String
	return &record, nil
}

func mapConstraintError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		if strings.Contains(sqliteErr.Error(), "file_unique_id") {
			return internal_errors.DuplicateFile
		}
		return internal_errors.DuplicateName
	}
	return &internal_errors.StorageError{Op: op, Err: err}
}
