package services

import (
	"fmt"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

// ResumeIntakeService turns an attached resume PDF into the plain text the
// recruitment service scores.
type ResumeIntakeService interface {
	ExtractText(file *multipart.FileHeader) (string, error)
}

type resumeIntakeService struct {
	storage StorageService
	parser  PDFParserService
	logger  *logrus.Logger
}

func NewResumeIntakeService(storage StorageService, parser PDFParserService, logger *logrus.Logger) ResumeIntakeService {
	return &resumeIntakeService{
		storage: storage,
		parser:  parser,
		logger:  logger,
	}
}

// ExtractText implements ResumeIntakeService. The stored copy is removed once
// the text has been read.
func (s *resumeIntakeService) ExtractText(file *multipart.FileHeader) (string, error) {
	filename, filePath, err := s.storage.SaveFile(file, "resume")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := s.storage.DeleteFile(filename); err != nil {
			s.logger.WithError(err).WithField("file", filename).Warn("Failed to remove stored resume")
		}
	}()

	text, err := s.parser.ExtractText(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read resume %s: %w", file.Filename, err)
	}

	s.logger.WithFields(logrus.Fields{
		"file":  file.Filename,
		"chars": len(text),
	}).Info("📄 Resume text extracted")
	return text, nil
}
