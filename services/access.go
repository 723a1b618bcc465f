package services

import (
	"context"

	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/models"
	"github.com/dgolubev/recordvault/repositories/repomanager"
)

// Authorizer is the richer authorization path a host may consult per
// endpoint instead of the store's plain ownership check: the owner always
// passes, and non-owners pass on an unexpired grant that carries
// modification rights. The vault store itself never consults grants.
type Authorizer struct {
	repomanager repomanager.RepositoryManager
}

func NewAuthorizer(m repomanager.RepositoryManager) *Authorizer {
	return &Authorizer{repomanager: m}
}

// CanModify reports whether the caller may mutate the record. An expired
// grant is indistinguishable from no grant (ErrorAccessForbidden); an active
// grant without modification rights yields ErrorInsufficientPrivilege.
func (a *Authorizer) CanModify(ctx context.Context, env models.Env, entryID models.RecordID) error {
	record, err := a.repomanager.Records(models.TierPrimary).Get(ctx, entryID)
	if err != nil {
		return err
	}

	if env.Caller == record.Owner {
		return nil
	}

	grant, err := a.repomanager.Grants().Get(ctx, entryID, env.Caller)
	if err != nil {
		return common.ErrorAccessForbidden
	}
	if !grant.ActiveAt(env.Now) {
		return common.ErrorAccessForbidden
	}

	switch {
	case grant.ModificationRights:
		return nil
	case grant.Level == models.LevelEditor, grant.Level == models.LevelAdministrator:
		return nil
	default:
		return common.ErrorInsufficientPrivilege
	}
}
