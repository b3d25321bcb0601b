package service

import (
	"context"
	"errors"

	"github.com/growai/fincoach/internal/integrations/gemini"
	"github.com/growai/fincoach/internal/models"
	"github.com/growai/fincoach/internal/nudge"
	"github.com/growai/fincoach/internal/repository"
	"github.com/growai/fincoach/internal/tax"
	"github.com/growai/fincoach/internal/templates"
)

// Defaults used when a user never completed profile setup, matching the
// behavior of the original dashboard.
var defaultBanks = []string{"HDFC", "ICICI"}

// Profile returns the user document and their stored snapshot, if any.
func (s *Service) Profile(userID int64) (*models.User, *models.FinancialSnapshot, error) {
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.repo.FindSnapshot(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return user, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return user, snap, nil
}

// SetupProfile stores the financial-profile selection and generates a fresh
// snapshot from it.
func (s *Service) SetupProfile(userID int64, profileType string, selectedBanks []string, ov *models.Overrides) (*models.FinancialSnapshot, error) {
	if len(selectedBanks) == 0 {
		selectedBanks = defaultBanks
	}

	snap, err := s.gen.Generate(profileType, selectedBanks, ov)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(userID, profileType, selectedBanks, ov); err != nil {
		return nil, err
	}
	if err := s.repo.SaveSnapshot(userID, snap); err != nil {
		return nil, err
	}
	s.cache.Set(userID, snap)

	s.log.Infof("Snapshot generated for user %d: profile=%s banks=%d", userID, profileType, len(selectedBanks))
	return snap, nil
}

// Regenerate replaces the stored snapshot with fresh draws from the user's
// stored profile selection.
func (s *Service) Regenerate(userID int64) (*models.FinancialSnapshot, error) {
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	profileType := user.ProfileType
	if profileType == "" {
		profileType = templates.YoungProfessional
	}
	selectedBanks := user.SelectedBanks
	if len(selectedBanks) == 0 {
		selectedBanks = defaultBanks
	}

	snap, err := s.gen.Generate(profileType, selectedBanks, user.Overrides)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveSnapshot(userID, snap); err != nil {
		return nil, err
	}
	s.cache.Set(userID, snap)

	s.log.Infof("Snapshot regenerated for user %d", userID)
	return snap, nil
}

// Snapshot returns the current snapshot for a user, generating and
// persisting one from their stored profile when none exists yet.
func (s *Service) Snapshot(userID int64) (*models.FinancialSnapshot, error) {
	if snap, ok := s.cache.Get(userID); ok {
		return snap, nil
	}

	snap, err := s.repo.FindSnapshot(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.Regenerate(userID)
	}
	if err != nil {
		return nil, err
	}
	s.cache.Set(userID, snap)
	return snap, nil
}

// Dashboard assembles the snapshot together with its derived tax estimate
// and nudges.
func (s *Service) Dashboard(userID int64) (*models.FinancialSnapshot, *models.TaxEstimate, []models.Nudge, error) {
	snap, err := s.Snapshot(userID)
	if err != nil {
		return nil, nil, nil, err
	}

	estimate, err := tax.Estimate(snap.Income.Monthly*12, "")
	if err != nil {
		// A zero-income snapshot has no tax view; the dashboard still renders.
		estimate = nil
	}

	return snap, estimate, nudge.Evaluate(snap, estimate), nil
}

// Nudges recomputes the advisory list for the current snapshot.
func (s *Service) Nudges(userID int64) ([]models.Nudge, error) {
	_, _, nudges, err := s.Dashboard(userID)
	return nudges, err
}

// EstimateTax computes the tax view for an annual income figure.
func (s *Service) EstimateTax(income int, category string) (*models.TaxEstimate, error) {
	return tax.Estimate(income, category)
}

// Chat forwards the user's question to the advisor together with a
// flattened view of their snapshot. Remote failures degrade to the local
// fallback reply; the chat surface never errors on the advisor's behalf.
func (s *Service) Chat(ctx context.Context, userID int64, message string) (string, error) {
	snap, err := s.Snapshot(userID)
	if err != nil {
		return "", err
	}

	if s.advisor == nil {
		return gemini.FallbackReply, nil
	}

	fc := gemini.FinancialContext{
		MonthlyIncome:    snap.Income.Monthly,
		TotalExpenses:    snap.Summary.TotalExpenses,
		TotalInvestments: snap.TotalInvestments(),
		Debts:            snap.DebtsByType(),
	}
	reply, err := s.advisor.Advise(ctx, fc, message)
	if err != nil {
		s.log.Warnf("Chat advisor failed for user %d: %v", userID, err)
		return gemini.FallbackReply, nil
	}
	return reply, nil
}
