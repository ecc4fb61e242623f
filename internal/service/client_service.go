package service

import (
	"context"
	"fmt"

	"github.com/clientbook/clientbook/internal/domain"
	"github.com/clientbook/clientbook/pkg/logger"
	"github.com/clientbook/clientbook/pkg/tracing"
)

const serviceName = "ClientService"

var _ domain.ClientService = (*ClientService)(nil)

type ClientService struct {
	repo   domain.ClientRepository
	logger logger.Logger
}

func NewClientService(repo domain.ClientRepository, logger logger.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ClientService) InitializeSchema(ctx context.Context) error {
	return tracing.TraceMethod(ctx, serviceName, "InitializeSchema", func(ctx context.Context) error {
		if err := s.repo.InitializeSchema(ctx); err != nil {
			s.logger.Error(fmt.Sprintf("Failed to initialize schema: %v", err))
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
		return nil
	})
}

func (s *ClientService) ResetSchema(ctx context.Context) error {
	return tracing.TraceMethod(ctx, serviceName, "ResetSchema", func(ctx context.Context) error {
		if err := s.repo.ResetSchema(ctx); err != nil {
			s.logger.Error(fmt.Sprintf("Failed to reset schema: %v", err))
			return fmt.Errorf("failed to reset schema: %w", err)
		}
		return nil
	})
}

func (s *ClientService) CreateClient(ctx context.Context, client *domain.Client) (int64, error) {
	ctx, span := tracing.StartServiceSpan(ctx, serviceName, "CreateClient")
	defer span.End()

	if err := client.Validate(); err != nil {
		tracing.MarkSpanError(ctx, err)
		return 0, err
	}
	tracing.AddAttribute(ctx, "client.phone_count", len(client.Phones))

	id, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		if domain.IsExpected(err) {
			return 0, err
		}
		s.logger.WithField("email", client.Email).Error(fmt.Sprintf("Failed to create client: %v", err))
		return 0, fmt.Errorf("failed to create client: %w", err)
	}

	tracing.AddAttribute(ctx, "client.id", id)
	return id, nil
}

func (s *ClientService) AddPhone(ctx context.Context, clientID int64, phoneNumber string) error {
	ctx, span := tracing.StartServiceSpan(ctx, serviceName, "AddPhone")
	defer span.End()
	tracing.AddAttribute(ctx, "client.id", clientID)

	if err := validateClientPhone(clientID, phoneNumber); err != nil {
		tracing.MarkSpanError(ctx, err)
		return err
	}

	if err := s.repo.AddPhone(ctx, clientID, phoneNumber); err != nil {
		tracing.MarkSpanError(ctx, err)
		if domain.IsExpected(err) {
			return err
		}
		s.logger.WithFields(map[string]interface{}{
			"client_id":    clientID,
			"phone_number": phoneNumber,
		}).Error(fmt.Sprintf("Failed to add phone: %v", err))
		return fmt.Errorf("failed to add phone: %w", err)
	}

	return nil
}

func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, update domain.ClientUpdate) error {
	ctx, span := tracing.StartServiceSpan(ctx, serviceName, "UpdateClient")
	defer span.End()
	tracing.AddAttribute(ctx, "client.id", clientID)

	if err := domain.ValidateClientID(clientID); err != nil {
		tracing.MarkSpanError(ctx, err)
		return err
	}
	if err := update.Validate(); err != nil {
		tracing.MarkSpanError(ctx, err)
		return err
	}
	if update.IsEmpty() {
		return nil
	}

	if err := s.repo.UpdateClient(ctx, clientID, update); err != nil {
		tracing.MarkSpanError(ctx, err)
		if domain.IsExpected(err) {
			return err
		}
		s.logger.WithField("client_id", clientID).Error(fmt.Sprintf("Failed to update client: %v", err))
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

func (s *ClientService) DeletePhone(ctx context.Context, clientID int64, phoneNumber string) (int64, error) {
	ctx, span := tracing.StartServiceSpan(ctx, serviceName, "DeletePhone")
	defer span.End()
	tracing.AddAttribute(ctx, "client.id", clientID)

	if err := validateClientPhone(clientID, phoneNumber); err != nil {
		tracing.MarkSpanError(ctx, err)
		return 0, err
	}

	deleted, err := s.repo.DeletePhone(ctx, clientID, phoneNumber)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		if domain.IsExpected(err) {
			return 0, err
		}
		s.logger.WithFields(map[string]interface{}{
			"client_id":    clientID,
			"phone_number": phoneNumber,
		}).Error(fmt.Sprintf("Failed to delete phone: %v", err))
		return 0, fmt.Errorf("failed to delete phone: %w", err)
	}

	tracing.AddAttribute(ctx, "phones.deleted", deleted)
	return deleted, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	ctx, span := tracing.StartServiceSpan(ctx, serviceName, "DeleteClient")
	defer span.End()
	tracing.AddAttribute(ctx, "client.id", clientID)

	if err := domain.ValidateClientID(clientID); err != nil {
		tracing.MarkSpanError(ctx, err)
		return err
	}

	if err := s.repo.DeleteClient(ctx, clientID); err != nil {
		tracing.MarkSpanError(ctx, err)
		if domain.IsExpected(err) {
			return err
		}
		s.logger.WithField("client_id", clientID).Error(fmt.Sprintf("Failed to delete client: %v", err))
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}

func (s *ClientService) FindClients(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	return tracing.TraceMethodWithResult(ctx, serviceName, "FindClients", func(ctx context.Context) ([]*domain.Client, error) {
		if err := filter.Validate(); err != nil {
			return nil, err
		}

		clients, err := s.repo.FindClients(ctx, filter)
		if err != nil {
			if domain.IsExpected(err) {
				return nil, err
			}
			s.logger.Error(fmt.Sprintf("Failed to find clients: %v", err))
			return nil, fmt.Errorf("failed to find clients: %w", err)
		}

		tracing.AddAttribute(ctx, "clients.count", len(clients))
		return clients, nil
	})
}

func (s *ClientService) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	return tracing.TraceMethodWithResult(ctx, serviceName, "GetClient", func(ctx context.Context) (*domain.Client, error) {
		if err := domain.ValidateClientID(clientID); err != nil {
			return nil, err
		}

		client, err := s.repo.GetClient(ctx, clientID)
		if err != nil {
			if domain.IsExpected(err) {
				return nil, err
			}
			s.logger.WithField("client_id", clientID).Error(fmt.Sprintf("Failed to get client: %v", err))
			return nil, fmt.Errorf("failed to get client: %w", err)
		}

		return client, nil
	})
}

func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return tracing.TraceMethodWithResult(ctx, serviceName, "ListClients", func(ctx context.Context) ([]*domain.Client, error) {
		clients, err := s.repo.ListClients(ctx)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to list clients: %v", err))
			return nil, fmt.Errorf("failed to list clients: %w", err)
		}

		tracing.AddAttribute(ctx, "clients.count", len(clients))
		return clients, nil
	})
}

func validateClientPhone(clientID int64, phoneNumber string) error {
	if err := domain.ValidateClientID(clientID); err != nil {
		return err
	}
	return domain.ValidatePhoneNumber(phoneNumber)
}
