package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/clientbook/clientbook/internal/database"
	"github.com/clientbook/clientbook/internal/domain"
)

// psql is a Squirrel StatementBuilder configured for PostgreSQL
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var clientColumns = []string{"id", "first_name", "last_name", "email"}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new PostgreSQL client repository
func NewClientRepository(db *sql.DB) domain.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// WithTransaction executes a function within a transaction.
// The transaction is rolled back unless fn returns nil and the commit succeeds.
func (r *clientRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Defer rollback - this will be a no-op if we successfully commit
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *clientRepository) InitializeSchema(ctx context.Context) error {
	return database.InitializeDatabase(ctx, r.db)
}

func (r *clientRepository) ResetSchema(ctx context.Context) error {
	if err := database.CleanDatabase(ctx, r.db); err != nil {
		return err
	}
	return database.InitializeDatabase(ctx, r.db)
}

func (r *clientRepository) CreateClient(ctx context.Context, client *domain.Client) (int64, error) {
	var id int64

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Insert("clients").
			Columns("first_name", "last_name", "email").
			Values(client.FirstName, client.LastName, client.Email).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			if domainErr := translateConstraintError(err, 0); domainErr != nil {
				return domainErr
			}
			return fmt.Errorf("failed to create client: %w", err)
		}

		for _, phone := range client.Phones {
			if err := insertPhone(ctx, tx, id, phone); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	client.ID = id
	return id, nil
}

func (r *clientRepository) AddPhone(ctx context.Context, clientID int64, phoneNumber string) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		return insertPhone(ctx, tx, clientID, phoneNumber)
	})
}

func insertPhone(ctx context.Context, q querier, clientID int64, phoneNumber string) error {
	query, args, err := psql.Insert("client_phones").
		Columns("client_id", "phone_number").
		Values(clientID, phoneNumber).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if domainErr := translateConstraintError(err, clientID); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to add phone: %w", err)
	}

	return nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, clientID int64, update domain.ClientUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	query, args, err := psql.Update("clients").
		SetMap(update.Fields()).
		Where(sq.Eq{"id": clientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		// A missing client affects zero rows and is not an error
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if domainErr := translateConstraintError(err, clientID); domainErr != nil {
				return domainErr
			}
			return fmt.Errorf("failed to update client: %w", err)
		}
		return nil
	})
}

func (r *clientRepository) DeletePhone(ctx context.Context, clientID int64, phoneNumber string) (int64, error) {
	var deleted int64

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := lockClient(ctx, tx, clientID); err != nil {
			return err
		}

		query, args, err := psql.Delete("client_phones").
			Where(sq.Eq{"client_id": clientID, "phone_number": phoneNumber}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to delete phone: %w", err)
		}

		deleted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// lockClient checks the client exists and keeps it from being deleted until the transaction ends
func lockClient(ctx context.Context, q querier, clientID int64) error {
	query, args, err := psql.Select("id").
		From("clients").
		Where(sq.Eq{"id": clientID}).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return &domain.ErrClientNotFound{ID: clientID}
	}
	if err != nil {
		return fmt.Errorf("failed to check client: %w", err)
	}
	return nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Delete("client_phones").
			Where(sq.Eq{"client_id": clientID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete client phones: %w", err)
		}

		query, args, err = psql.Delete("clients").
			Where(sq.Eq{"id": clientID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return &domain.ErrClientNotFound{ID: clientID}
		}

		return nil
	})
}

func (r *clientRepository) FindClients(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	builder := psql.Select(clientColumns...).
		From("clients").
		OrderBy("id")

	if filter.Phone != "" {
		// The phone number identifies at most one client, other fields are ignored
		subQuery, subArgs, err := sq.Select("client_id").
			From("client_phones").
			Where(sq.Eq{"phone_number": filter.Phone}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build query: %w", err)
		}
		builder = builder.Where("id IN ("+subQuery+")", subArgs...)
	} else {
		whereClause := sq.And{}
		if filter.ID != 0 {
			whereClause = append(whereClause, sq.Eq{"id": filter.ID})
		}
		if filter.FirstName != "" {
			whereClause = append(whereClause, sq.Eq{"first_name": filter.FirstName})
		}
		if filter.LastName != "" {
			whereClause = append(whereClause, sq.Eq{"last_name": filter.LastName})
		}
		if filter.Email != "" {
			whereClause = append(whereClause, sq.Eq{"email": filter.Email})
		}
		builder = builder.Where(whereClause)
	}

	var clients []*domain.Client
	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		clients, err = queryClients(ctx, tx, builder)
		return err
	})
	if err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	builder := psql.Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"id": clientID})

	var client *domain.Client
	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		clients, err := queryClients(ctx, tx, builder)
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			return &domain.ErrClientNotFound{ID: clientID}
		}
		client = clients[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	builder := psql.Select(clientColumns...).
		From("clients").
		OrderBy("id")

	var clients []*domain.Client
	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		clients, err = queryClients(ctx, tx, builder)
		return err
	})
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// queryClients runs a client select and attaches each client's phone numbers
func queryClients(ctx context.Context, q querier, builder sq.SelectBuilder) ([]*domain.Client, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find clients: %w", err)
	}
	defer rows.Close()

	clients := []*domain.Client{}
	for rows.Next() {
		client, err := domain.ScanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	rows.Close()

	if len(clients) == 0 {
		return clients, nil
	}

	if err := attachPhones(ctx, q, clients); err != nil {
		return nil, err
	}

	return clients, nil
}

func attachPhones(ctx context.Context, q querier, clients []*domain.Client) error {
	ids := make([]int64, 0, len(clients))
	byID := make(map[int64]*domain.Client, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}

	query, args, err := psql.Select("id", "client_id", "phone_number").
		From("client_phones").
		Where("client_id = ANY(?)", pq.Array(ids)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to load phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		phone, err := domain.ScanPhone(rows)
		if err != nil {
			return fmt.Errorf("failed to scan phone: %w", err)
		}
		if c, ok := byID[phone.ClientID]; ok {
			c.Phones = append(c.Phones, phone.PhoneNumber)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating phone rows: %w", err)
	}

	return nil
}
