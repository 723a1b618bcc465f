// Package services contains the vault's business logic: record lifecycle,
// permission grants, and the combined authorization check hosts consult per
// endpoint. Every operation takes a context.Context plus a models.Env
// carrying the ambient caller identity and logical clock.
package services

import (
	"context"
	"fmt"

	"github.com/dgolubev/recordvault/audit"
	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/logging"
	"github.com/dgolubev/recordvault/models"
	"github.com/dgolubev/recordvault/repositories/repomanager"
	"github.com/dgolubev/recordvault/validation"
)

// ValidationPolicy selects how much field checking an update performs.
type ValidationPolicy int

const (
	// PolicyStrict applies the full field-format rules.
	PolicyStrict ValidationPolicy = iota
	// PolicyLenient skips field-format validation entirely; only existence
	// and ownership are checked.
	PolicyLenient
)

// CreateInput carries the caller-supplied fields of a new record.
type CreateInput struct {
	Title         string
	IntegrityHash string
	Payload       string
	Category      string
	Tags          []string
}

// UpdateInput carries the replacement fields for an existing record.
// Category is absent: it is immutable after creation.
type UpdateInput struct {
	ID            models.RecordID
	Title         string
	IntegrityHash string
	Payload       string
	Tags          []string
}

// VaultService creates and updates records, assigns identifiers through the
// backing store, and enforces ownership-gated mutation.
type VaultService struct {
	repomanager repomanager.RepositoryManager
	validator   *validation.Validator
	logger      logging.Logger
	audit       audit.Recorder
}

// NewVaultService constructs a VaultService. A nil recorder disables
// auditing.
func NewVaultService(m repomanager.RepositoryManager, v *validation.Validator, l logging.Logger, rec audit.Recorder) *VaultService {
	if rec == nil {
		rec = audit.NopRecorder{}
	}
	return &VaultService{
		repomanager: m,
		validator:   v,
		logger:      l.With("module", "vault_service"),
		audit:       rec,
	}
}

// Create validates every field, then atomically assigns the next identifier
// and inserts the record with Owner set to the caller and both timestamps
// set to the current logical time. Identifiers are monotonically increasing
// and never reused, regardless of caller identity.
func (s *VaultService) Create(ctx context.Context, env models.Env, tier models.StorageTier, in CreateInput) (models.RecordID, error) {
	if err := s.validator.Create(in.Title, in.IntegrityHash, in.Payload, in.Category, in.Tags); err != nil {
		return 0, err
	}

	record := &models.Record{
		Owner:         env.Caller,
		Title:         in.Title,
		IntegrityHash: in.IntegrityHash,
		Payload:       in.Payload,
		Category:      in.Category,
		Tags:          in.Tags,
		CreatedAt:     env.Now,
		UpdatedAt:     env.Now,
	}

	id, err := s.repomanager.Records(tier).Create(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("error creating record: %w", err)
	}

	s.logger.Info(ctx, "record created", "id", id, "tier", tier.String())
	s.audit.Record(ctx, audit.NewEvent(audit.EventRecordCreate, env.Caller, id, env.Now,
		map[string]string{"tier": tier.String()}))

	return id, nil
}

// Update is the strict variant: full field validation before the write.
func (s *VaultService) Update(ctx context.Context, env models.Env, tier models.StorageTier, in UpdateInput) error {
	return s.update(ctx, env, tier, in, PolicyStrict)
}

// UpdateLenient applies the write after the existence and ownership checks
// only, with no field-format validation. It is a deliberately less-strict
// entry point, not a shortcut for callers of Update.
func (s *VaultService) UpdateLenient(ctx context.Context, env models.Env, tier models.StorageTier, in UpdateInput) error {
	return s.update(ctx, env, tier, in, PolicyLenient)
}

// update is the single parameterized path behind both variants. Precondition
// order is fixed: existence, ownership, then (policy permitting) field
// validation. No side effects occur when any precondition fails.
func (s *VaultService) update(ctx context.Context, env models.Env, tier models.StorageTier, in UpdateInput, policy ValidationPolicy) error {
	repo := s.repomanager.Records(tier)

	record, err := repo.Get(ctx, in.ID)
	if err != nil {
		return err
	}

	if env.Caller != record.Owner {
		return common.ErrorAccessForbidden
	}

	if policy == PolicyStrict {
		if err := s.validator.Update(in.Title, in.IntegrityHash, in.Payload, in.Tags); err != nil {
			return err
		}
	}

	// ID, Owner, Category, and CreatedAt are preserved from the stored copy.
	record.Title = in.Title
	record.IntegrityHash = in.IntegrityHash
	record.Payload = in.Payload
	record.Tags = in.Tags
	record.UpdatedAt = env.Now

	if err := repo.Save(ctx, record); err != nil {
		return fmt.Errorf("error updating record: %w", err)
	}

	s.logger.Info(ctx, "record updated", "id", in.ID, "tier", tier.String())
	s.audit.Record(ctx, audit.NewEvent(audit.EventRecordUpdate, env.Caller, in.ID, env.Now,
		map[string]string{"tier": tier.String()}))

	return nil
}
