package seeding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dashboard-seed-backend/internal/auth"
	"dashboard-seed-backend/internal/placeholder"
	"dashboard-seed-backend/internal/repository"

	"gorm.io/gorm"
)

type Step string

const (
	StepConnect   Step = "connect"
	StepUsers     Step = "users"
	StepCustomers Step = "customers"
	StepInvoices  Step = "invoices"
	StepRevenue   Step = "revenue"
)

// StepError records which step aborted a seed run.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("seed %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step named by a *StepError in err's chain.
func FailedStep(err error) (Step, bool) {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step, true
	}
	return "", false
}

// Cause returns the innermost error in err's chain, the message the
// database or hasher produced without the step and statement prefixes.
func Cause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// Summary counts the rows each step wrote. Skipped conflicts are not counted.
type Summary struct {
	Users     int64
	Customers int64
	Invoices  int64
	Revenue   int64
	Duration  time.Duration
}

type DBProvider interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

type SeedService struct {
	provider DBProvider
	data     placeholder.Dataset
	hash     auth.Hasher
	logger   *slog.Logger
}

func NewSeedService(
	provider DBProvider,
	data placeholder.Dataset,
	hash auth.Hasher,
	logger *slog.Logger,
) *SeedService {
	if hash == nil {
		hash = auth.DefaultHasher
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SeedService{
		provider: provider,
		data:     data,
		hash:     hash,
		logger:   logger,
	}
}

// Seed drops and recreates users, customers, invoices and revenue, then
// fills them from the dataset, all in one transaction. On error nothing from
// this run is committed.
func (s *SeedService) Seed(ctx context.Context) (Summary, error) {
	start := time.Now()

	db, err := s.provider.DB(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error seeding database", slog.String("error", err.Error()))
		return Summary{}, &StepError{Step: StepConnect, Err: err}
	}
	dialect, err := repository.DialectFor(db)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error seeding database", slog.String("error", err.Error()))
		return Summary{}, &StepError{Step: StepConnect, Err: err}
	}

	var summary Summary
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		summary, txErr = s.SeedTx(ctx, tx, dialect)
		return txErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error seeding database", slog.String("error", err.Error()))
		return Summary{}, err
	}

	summary.Duration = time.Since(start)
	s.logger.InfoContext(ctx, "Database seeded",
		slog.Int64("users", summary.Users),
		slog.Int64("customers", summary.Customers),
		slog.Int64("invoices", summary.Invoices),
		slog.Int64("revenue", summary.Revenue),
		slog.Duration("elapsed", summary.Duration),
	)
	return summary, nil
}

// SeedTx runs the four steps on tx, which may be a top-level or a nested
// transaction. The caller owns commit and rollback.
func (s *SeedService) SeedTx(ctx context.Context, tx repository.Execer, dialect repository.Dialect) (Summary, error) {
	var summary Summary
	schema := repository.NewSchemaRepository(tx, dialect)

	steps := []struct {
		step Step
		run  func() (int64, error)
		dst  *int64
	}{
		{StepUsers, func() (int64, error) { return s.seedUsers(schema, repository.NewUserRepository(tx)) }, &summary.Users},
		{StepCustomers, func() (int64, error) { return s.seedCustomers(schema, repository.NewCustomerRepository(tx)) }, &summary.Customers},
		{StepInvoices, func() (int64, error) { return s.seedInvoices(schema, repository.NewInvoiceRepository(tx)) }, &summary.Invoices},
		{StepRevenue, func() (int64, error) { return s.seedRevenue(schema, repository.NewRevenueRepository(tx)) }, &summary.Revenue},
	}

	for _, st := range steps {
		n, err := st.run()
		if err != nil {
			return Summary{}, &StepError{Step: st.step, Err: err}
		}
		*st.dst = n
		s.logger.DebugContext(ctx, "seed step done", slog.String("step", string(st.step)), slog.Int64("rows", n))
	}
	return summary, nil
}

func (s *SeedService) seedUsers(schema *repository.SchemaRepository, repo *repository.UserRepository) (int64, error) {
	if err := schema.EnsureUUIDExtension(); err != nil {
		return 0, err
	}
	if err := schema.Recreate(repository.TableUsers); err != nil {
		return 0, err
	}

	var inserted int64
	for _, u := range s.data.Users {
		hashed, err := s.hash(u.Password)
		if err != nil {
			return 0, err
		}
		u.Password = hashed
		n, err := repo.InsertIgnore(u)
		if err != nil {
			return 0, err
		}
		inserted += n
	}
	return inserted, nil
}

func (s *SeedService) seedCustomers(schema *repository.SchemaRepository, repo *repository.CustomerRepository) (int64, error) {
	if err := schema.EnsureUUIDExtension(); err != nil {
		return 0, err
	}
	if err := schema.Recreate(repository.TableCustomers); err != nil {
		return 0, err
	}

	var inserted int64
	for _, c := range s.data.Customers {
		n, err := repo.InsertIgnore(c)
		if err != nil {
			return 0, err
		}
		inserted += n
	}
	return inserted, nil
}

func (s *SeedService) seedInvoices(schema *repository.SchemaRepository, repo *repository.InvoiceRepository) (int64, error) {
	if err := schema.EnsureUUIDExtension(); err != nil {
		return 0, err
	}
	if err := schema.Recreate(repository.TableInvoices); err != nil {
		return 0, err
	}

	var inserted int64
	for _, inv := range s.data.Invoices {
		n, err := repo.InsertIgnore(inv)
		if err != nil {
			return 0, err
		}
		inserted += n
	}
	return inserted, nil
}

func (s *SeedService) seedRevenue(schema *repository.SchemaRepository, repo *repository.RevenueRepository) (int64, error) {
	if err := schema.Recreate(repository.TableRevenue); err != nil {
		return 0, err
	}

	var inserted int64
	for _, r := range s.data.Revenue {
		n, err := repo.InsertIgnore(r)
		if err != nil {
			return 0, err
		}
		inserted += n
	}
	return inserted, nil
}
