package services

import (
	"context"
	"fmt"

	"github.com/dgolubev/recordvault/audit"
	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/config"
	"github.com/dgolubev/recordvault/logging"
	"github.com/dgolubev/recordvault/models"
	"github.com/dgolubev/recordvault/repositories/repomanager"
)

// PermissionService grants time-bounded, leveled access to a record to a
// principal other than its owner. Grants consult the primary record tier
// only; the enhanced tier is never cross-referenced.
type PermissionService struct {
	repomanager repomanager.RepositoryManager
	maxDuration models.Ticks
	logger      logging.Logger
	audit       audit.Recorder
}

// NewPermissionService constructs a PermissionService. A nil recorder
// disables auditing.
func NewPermissionService(m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger, rec audit.Recorder) *PermissionService {
	if rec == nil {
		rec = audit.NopRecorder{}
	}
	return &PermissionService{
		repomanager: m,
		maxDuration: cfg.MaxGrantDuration,
		logger:      l.With("module", "permission_service"),
		audit:       rec,
	}
}

// Grant stores a delegation of rights over one record. Precondition order is
// fixed: record existence, caller ownership, self-delegation, privilege
// level, duration bounds. On success the grant for (entryID, grantee) is
// inserted or fully replaced, with ExpiresAt = env.Now + duration. Grants
// never alter the record's owner, and the owner's own authority is never
// mediated through the registry.
func (s *PermissionService) Grant(ctx context.Context, env models.Env, entryID models.RecordID,
	grantee models.Principal, level models.PrivilegeLevel, duration models.Ticks, modificationRights bool) error {

	record, err := s.repomanager.Records(models.TierPrimary).Get(ctx, entryID)
	if err != nil {
		return err
	}

	if env.Caller != record.Owner {
		return common.ErrorAccessForbidden
	}

	if grantee == env.Caller {
		return fmt.Errorf("%w: self-delegation is disallowed", common.ErrorInvalidInput)
	}

	if !level.Valid() {
		return common.ErrorPermissionLevelMismatch
	}

	if duration == 0 || duration > s.maxDuration {
		return fmt.Errorf("%w: duration must be in (0, %d]", common.ErrorTemporalBoundary, s.maxDuration)
	}

	grant := &models.Grant{
		EntryID:            entryID,
		Grantee:            grantee,
		Level:              level,
		ModificationRights: modificationRights,
		GrantedAt:          env.Now,
		ExpiresAt:          env.Now + models.LogicalTime(duration),
	}

	if err := s.repomanager.Grants().Put(ctx, grant); err != nil {
		return fmt.Errorf("error storing grant: %w", err)
	}

	s.logger.Info(ctx, "access granted",
		"entry_id", entryID, "grantee", string(grantee), "level", string(level))
	s.audit.Record(ctx, audit.NewEvent(audit.EventAccessGrant, env.Caller, entryID, env.Now,
		map[string]string{"grantee": string(grantee), "level": string(level)}))

	return nil
}

// Lookup returns the stored grant for (entryID, grantee) whether or not it
// has expired. The registry performs no expiry sweep; stored rows never
// change because time passed.
func (s *PermissionService) Lookup(ctx context.Context, entryID models.RecordID, grantee models.Principal) (*models.Grant, error) {
	return s.repomanager.Grants().Get(ctx, entryID, grantee)
}

// ActiveGrant is the reader-side validity check: it returns the grant only
// if it has not expired at env.Now, and ErrorTemporalBoundary otherwise.
func (s *PermissionService) ActiveGrant(ctx context.Context, env models.Env, entryID models.RecordID, grantee models.Principal) (*models.Grant, error) {
	grant, err := s.Lookup(ctx, entryID, grantee)
	if err != nil {
		return nil, err
	}
	if !grant.ActiveAt(env.Now) {
		return nil, fmt.Errorf("%w: grant expired at %d", common.ErrorTemporalBoundary, grant.ExpiresAt)
	}
	return grant, nil
}
