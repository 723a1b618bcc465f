// Package validation implements the field-format rules for vault records.
// Each field maps to one distinguishable failure kind, and rules are applied
// fail-fast in a fixed order so that a call violating several preconditions
// reports exactly one documented cause.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dgolubev/recordvault/common"
	"github.com/dgolubev/recordvault/config"
)

// Validator checks record fields against configured limits.
type Validator struct {
	v *validator.Validate

	titleRule    string
	hashRule     string
	payloadRule  string
	categoryRule string
	tagsRule     string
}

// New builds a Validator whose rules reflect the given limits.
func New(cfg *config.Config) *Validator {
	return &Validator{
		v:            validator.New(),
		titleRule:    fmt.Sprintf("min=%d,max=%d", cfg.TitleMinLen, cfg.TitleMaxLen),
		hashRule:     fmt.Sprintf("len=%d", cfg.IntegrityHashLen),
		payloadRule:  fmt.Sprintf("min=%d,max=%d", cfg.PayloadMinLen, cfg.PayloadMaxLen),
		categoryRule: fmt.Sprintf("min=%d,max=%d", cfg.CategoryMinLen, cfg.CategoryMaxLen),
		tagsRule: fmt.Sprintf("min=%d,max=%d,dive,min=%d,max=%d",
			cfg.TagsMinCount, cfg.TagsMaxCount, cfg.TagMinLen, cfg.TagMaxLen),
	}
}

// Title checks the title length. Violations surface as ErrorInvalidInput.
func (vd *Validator) Title(s string) error {
	if err := vd.v.Var(s, vd.titleRule); err != nil {
		return fmt.Errorf("%w: title: %v", common.ErrorInvalidInput, err)
	}
	return nil
}

// IntegrityHash checks the hash length only; the hash format is deliberately
// not validated. Violations surface as ErrorInvalidInput.
func (vd *Validator) IntegrityHash(s string) error {
	if err := vd.v.Var(s, vd.hashRule); err != nil {
		return fmt.Errorf("%w: integrity hash: %v", common.ErrorInvalidInput, err)
	}
	return nil
}

// Payload checks the payload length. Violations surface as
// ErrorContentValidation.
func (vd *Validator) Payload(s string) error {
	if err := vd.v.Var(s, vd.payloadRule); err != nil {
		return fmt.Errorf("%w: payload: %v", common.ErrorContentValidation, err)
	}
	return nil
}

// Tags checks the tag list size and each element's length. Any bad element
// fails the whole call with ErrorContentValidation.
func (vd *Validator) Tags(tags []string) error {
	if err := vd.v.Var(tags, vd.tagsRule); err != nil {
		return fmt.Errorf("%w: tags: %v", common.ErrorContentValidation, err)
	}
	return nil
}

// Category checks the category length. Violations surface as
// ErrorCategoryValidation.
func (vd *Validator) Category(s string) error {
	if err := vd.v.Var(s, vd.categoryRule); err != nil {
		return fmt.Errorf("%w: category: %v", common.ErrorCategoryValidation, err)
	}
	return nil
}

// Create validates every field of a new record in the fixed order
// title, hash, payload, tags, category.
func (vd *Validator) Create(title, hash, payload, category string, tags []string) error {
	if err := vd.Title(title); err != nil {
		return err
	}
	if err := vd.IntegrityHash(hash); err != nil {
		return err
	}
	if err := vd.Payload(payload); err != nil {
		return err
	}
	if err := vd.Tags(tags); err != nil {
		return err
	}
	return vd.Category(category)
}

// Update validates the mutable fields of an existing record. Category is
// immutable after creation and never re-validated on update.
func (vd *Validator) Update(title, hash, payload string, tags []string) error {
	if err := vd.Title(title); err != nil {
		return err
	}
	if err := vd.IntegrityHash(hash); err != nil {
		return err
	}
	if err := vd.Payload(payload); err != nil {
		return err
	}
	return vd.Tags(tags)
}
