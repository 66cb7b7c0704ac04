package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bayside-hms/bayside-hms/internal/finance/accounts"
	"github.com/bayside-hms/bayside-hms/internal/observability"
	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// PostingInput describes one ledger posting. AccountID zero means the default
// posting account.
type PostingInput struct {
	Type        TxType
	Amount      float64
	Description string
	AccountID   int64
	Reference   Reference
	ReferenceID *int64
	Category    *string
	Date        time.Time
}

type idempotencyChecker interface {
	CheckAndInsert(ctx context.Context, key, module string) error
}

// Options configures the ledger.
type Options struct {
	// PrimaryAccountID pins the default posting account. Zero falls back to
	// the earliest-created account.
	PrimaryAccountID int64
	// LegacyPosting switches to the two-step insert-then-adjust sequence the
	// previous system used. The default posts atomically.
	LegacyPosting bool
	Metrics       *observability.Metrics
	Idempotency   idempotencyChecker
}

// Ledger owns transaction posting and the balance bookkeeping that goes with
// it. Automated postings (checkouts, service orders) and manual entries all
// go through Post so the balance rule lives in one place.
type Ledger struct {
	repo     Repository
	accounts accounts.Repository
	opts     Options
	logger   *slog.Logger

	mu        sync.Mutex
	defaultID int64
}

// NewLedger constructs the ledger service.
func NewLedger(logger *slog.Logger, repo Repository, accountsRepo accounts.Repository, opts Options) *Ledger {
	return &Ledger{
		repo:     repo,
		accounts: accountsRepo,
		opts:     opts,
		logger:   logger,
	}
}

// Post records a transaction and applies its balance effect. When no default
// account can be resolved for an automated posting it returns (nil, nil) and
// the movement is dropped, matching the behaviour the books were migrated
// from.
func (l *Ledger) Post(ctx context.Context, in PostingInput) (*Transaction, error) {
	accountID := in.AccountID
	if accountID == 0 {
		id, err := l.defaultAccountID(ctx)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				l.logger.Warn("posting skipped, no account configured",
					slog.String("reference", string(in.Reference)),
					slog.Float64("amount", in.Amount))
				return nil, nil
			}
			return nil, fmt.Errorf("resolve default account: %w", err)
		}
		accountID = id
	}

	t := Transaction{
		Date:        in.Date,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		AccountID:   accountID,
		Reference:   in.Reference,
		ReferenceID: in.ReferenceID,
		Category:    in.Category,
	}
	delta := BalanceDelta(in.Type, in.Amount)

	var id int64
	var err error
	if l.opts.LegacyPosting {
		id, err = l.postLegacy(ctx, t, delta)
	} else {
		id, err = l.repo.Post(ctx, t, delta)
	}
	if err != nil {
		return nil, fmt.Errorf("post transaction: %w", err)
	}

	l.opts.Metrics.RecordPosting(string(in.Type), string(in.Reference))
	return l.repo.Get(ctx, id)
}

// postLegacy replays the old two-step sequence: insert, then adjust. A failure
// between the steps leaves the transaction recorded with the balance
// untouched. The gap is intentional; it is what LEGACY_POSTING opts into.
func (l *Ledger) postLegacy(ctx context.Context, t Transaction, delta float64) (int64, error) {
	id, err := l.repo.Insert(ctx, t)
	if err != nil {
		return 0, err
	}
	if delta != 0 {
		if err := l.repo.AdjustBalance(ctx, t.AccountID, delta); err != nil {
			return 0, fmt.Errorf("adjust balance after insert %d: %w", id, err)
		}
	}
	return id, nil
}

// CreateManual handles the manual posting endpoint: the account must exist and
// an optional idempotency key guards against client retries.
func (l *Ledger) CreateManual(ctx context.Context, req CreateTransactionRequest, idemKey string) (*Transaction, error) {
	if _, err := l.accounts.Get(ctx, req.Account); err != nil {
		return nil, err
	}

	if idemKey != "" && l.opts.Idempotency != nil {
		if err := l.opts.Idempotency.CheckAndInsert(ctx, idemKey, "transactions"); err != nil {
			switch {
			case errors.Is(err, shared.ErrInvalidIdempotencyKey):
				return nil, fmt.Errorf("%w: %s", shared.ErrValidation, err)
			case errors.Is(err, shared.ErrIdempotencyConflict):
				return nil, fmt.Errorf("%w: %s", shared.ErrConflict, err)
			default:
				return nil, err
			}
		}
	}

	in := PostingInput{
		Type:        TxType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		AccountID:   req.Account,
		Reference:   Reference(req.Reference),
		ReferenceID: req.ReferenceID,
		Category:    req.Category,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	return l.Post(ctx, in)
}

func (l *Ledger) List(ctx context.Context, req ListTransactionsRequest) ([]Transaction, int, error) {
	return l.repo.List(ctx, req)
}

func (l *Ledger) defaultAccountID(ctx context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.defaultID != 0 {
		return l.defaultID, nil
	}

	if l.opts.PrimaryAccountID != 0 {
		acc, err := l.accounts.Get(ctx, l.opts.PrimaryAccountID)
		if err != nil {
			return 0, err
		}
		l.defaultID = acc.ID
		return l.defaultID, nil
	}

	acc, err := l.accounts.First(ctx)
	if err != nil {
		return 0, err
	}
	l.defaultID = acc.ID
	return l.defaultID, nil
}
