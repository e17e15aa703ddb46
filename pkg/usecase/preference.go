package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

// Preferences is the device configuration visible to clients. The credential itself is never exposed.
type Preferences struct {
	HasCredential bool   `json:"hasCredential"`
	CoachEmail    string `json:"coachEmail"`
}

type PreferenceUseCase struct {
	repo interfaces.Repository
}

func NewPreferenceUseCase(repo interfaces.Repository) *PreferenceUseCase {
	return &PreferenceUseCase{repo: repo}
}

func (uc *PreferenceUseCase) get(ctx context.Context, key types.StorageKey) (string, error) {
	data, err := uc.repo.Get(ctx, key)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read preference", goerr.V(StorageKeyKey, key))
	}
	return string(data), nil
}

func (uc *PreferenceUseCase) Credential(ctx context.Context) (types.Credential, error) {
	v, err := uc.get(ctx, types.StorageKeyCredential)
	if err != nil {
		return "", err
	}
	return types.Credential(v), nil
}

// SetCredential stores a trimmed credential. A blank value leaves the stored one untouched.
func (uc *PreferenceUseCase) SetCredential(ctx context.Context, credential string) error {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil
	}
	if err := uc.repo.Put(ctx, types.StorageKeyCredential, []byte(credential)); err != nil {
		return goerr.Wrap(err, "failed to save credential")
	}
	return nil
}

func (uc *PreferenceUseCase) CoachEmail(ctx context.Context) (string, error) {
	return uc.get(ctx, types.StorageKeyCoachEmail)
}

// SetCoachEmail stores a trimmed email. A blank value removes the stored one.
func (uc *PreferenceUseCase) SetCoachEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		if err := uc.repo.Delete(ctx, types.StorageKeyCoachEmail); err != nil {
			return goerr.Wrap(err, "failed to clear coach email")
		}
		return nil
	}
	if err := uc.repo.Put(ctx, types.StorageKeyCoachEmail, []byte(email)); err != nil {
		return goerr.Wrap(err, "failed to save coach email")
	}
	return nil
}

func (uc *PreferenceUseCase) Get(ctx context.Context) (*Preferences, error) {
	credential, err := uc.Credential(ctx)
	if err != nil {
		return nil, err
	}
	email, err := uc.CoachEmail(ctx)
	if err != nil {
		return nil, err
	}
	return &Preferences{
		HasCredential: !credential.IsEmpty(),
		CoachEmail:    email,
	}, nil
}
