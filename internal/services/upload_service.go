package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxResumeSize = 5 * 1024 * 1024 // 5 MiB

// Resume uploads are limited to the formats recruiters can actually open.
var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// UploadService owns the resume upload directory. Stored names are
// server-generated, so the user-supplied filename is never used as a
// path component.
type UploadService struct {
	Dir string
}

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &UploadService{Dir: dir}, nil
}

// SaveResume validates and writes a single resume file, returning the
// stored filename.
func (s *UploadService) SaveResume(header *multipart.FileHeader) (string, error) {
	if header.Size > maxResumeSize {
		return "", invalid("File size too large. Maximum size is 5MB.")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if !allowedResumeTypes[contentType] || !allowedResumeExts[ext] {
		return "", invalid("Only PDF, DOC, and DOCX files are allowed")
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		s.Remove(name)
		return "", err
	}
	return name, nil
}

// Remove deletes a stored resume. Used to roll back the file write when
// anything after it fails; errors are logged, never surfaced.
func (s *UploadService) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil {
		log.Printf("Error deleting file %s: %v", name, err)
	}
}

// SafeResumeName rejects filenames that could escape the upload
// directory. Must pass before any filesystem lookup.
func SafeResumeName(name string) bool {
	return name != "" &&
		!strings.Contains(name, "..") &&
		!strings.Contains(name, "/") &&
		!strings.Contains(name, "\\")
}

// ResumePath resolves a stored filename inside the upload directory.
func (s *UploadService) ResumePath(name string) string {
	return filepath.Join(s.Dir, name)
}

// Exists reports whether a stored resume is present on disk.
func (s *UploadService) Exists(name string) bool {
	_, err := os.Stat(s.ResumePath(name))
	return err == nil
}
