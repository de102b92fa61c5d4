package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/repositories"
)

const pathSendEmail = "/send_email"

type EmailService interface {
	Send(ctx context.Context, req *models.EmailRequest) error
}

type emailService struct {
	client    *repositories.Client
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewEmailService(client *repositories.Client, v *validator.Validate, logger *logrus.Logger) EmailService {
	return &emailService{
		client:    client,
		validator: v,
		logger:    logger,
	}
}

// Send implements EmailService. Delivery itself is done by the recruitment service.
func (s *emailService) Send(ctx context.Context, req *models.EmailRequest) error {
	if err := validateStruct(s.validator, req); err != nil {
		return err
	}

	if err := s.client.Post(ctx, pathSendEmail, req, nil); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"status":   req.Status,
		"position": req.Position,
	}).Info("📧 Email sent to candidate")
	return nil
}
