package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/repository/memory"
)

func TestPreferenceUseCase(t *testing.T) {
	t.Run("credential is trimmed and never cleared by blank input", func(t *testing.T) {
		uc := newUseCases(memory.New(), nil)
		ctx := t.Context()

		prefs, err := uc.Preference.Get(ctx)
		gt.NoError(t, err).Required()
		gt.B(t, prefs.HasCredential).False()

		gt.NoError(t, uc.Preference.SetCredential(ctx, "  AIza-key \n")).Required()
		gt.NoError(t, uc.Preference.SetCredential(ctx, "   ")).Required()

		credential, err := uc.Preference.Credential(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, credential).Equal(types.Credential("AIza-key"))

		prefs, err = uc.Preference.Get(ctx)
		gt.NoError(t, err).Required()
		gt.B(t, prefs.HasCredential).True()
	})

	t.Run("coach email is trimmed", func(t *testing.T) {
		uc := newUseCases(memory.New(), nil)
		ctx := t.Context()

		gt.NoError(t, uc.Preference.SetCoachEmail(ctx, " coach@example.com ")).Required()
		prefs, err := uc.Preference.Get(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, prefs.CoachEmail).Equal("coach@example.com")
	})
	t.Run("blank coach email removes the stored entry", func(t *testing.T) {
		repo := memory.New()
		uc := newUseCases(repo, nil)
		ctx := t.Context()

		gt.NoError(t, uc.Preference.SetCoachEmail(ctx, "coach@example.com")).Required()
		gt.NoError(t, uc.Preference.SetCoachEmail(ctx, "  ")).Required()

		stored, err := repo.Get(ctx, types.StorageKeyCoachEmail)
		gt.NoError(t, err).Required()
		gt.Value(t, stored).Nil()

		prefs, err := uc.Preference.Get(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, prefs.CoachEmail).Equal("")
	})
}
