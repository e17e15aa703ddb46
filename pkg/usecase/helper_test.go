package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/repository/memory"
	"github.com/secmon-lab/coachnote/pkg/service/summary"
	"github.com/secmon-lab/coachnote/pkg/usecase"
)

var fixedNow = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// mockFactory answers every prompt with generateFn and records the prompts it saw
type mockFactory struct {
	mu         sync.Mutex
	generateFn func(ctx context.Context, prompt string) (string, error)
	prompts    []string
}

func (f *mockFactory) RequiresCredential() bool { return true }

func (f *mockFactory) New(ctx context.Context, credential types.Credential) (interfaces.TextGenerator, error) {
	return f, nil
}

func (f *mockFactory) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	return f.generateFn(ctx, prompt)
}

func (f *mockFactory) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func replying(text string) *mockFactory {
	return &mockFactory{generateFn: func(ctx context.Context, prompt string) (string, error) {
		return text, nil
	}}
}

func failing(msg string) *mockFactory {
	return &mockFactory{generateFn: func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New(msg)
	}}
}

// blocking holds every generation until release is closed
func blocking(text string) (*mockFactory, chan struct{}, chan struct{}) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	return &mockFactory{generateFn: func(ctx context.Context, prompt string) (string, error) {
		started <- struct{}{}
		<-release
		return text, nil
	}}, started, release
}

func newUseCases(repo interfaces.Repository, factory interfaces.GeneratorFactory, opts ...usecase.Option) *usecase.UseCases {
	base := []usecase.Option{
		usecase.WithClock(fixedClock),
		usecase.WithLocation(time.UTC),
	}
	if factory != nil {
		base = append(base, usecase.WithSummarizer(summary.New(factory)))
	}
	return usecase.New(repo, append(base, opts...)...)
}

func withCredential(repo *memory.Memory) *memory.Memory {
	_ = repo.Put(context.Background(), types.StorageKeyCredential, []byte("test-key"))
	return repo
}

// brokenRepo fails every write and serves reads from data
type brokenRepo struct {
	data map[types.StorageKey][]byte
}

func (r *brokenRepo) Get(ctx context.Context, key types.StorageKey) ([]byte, error) {
	return r.data[key], nil
}

func (r *brokenRepo) Put(ctx context.Context, key types.StorageKey, value []byte) error {
	return errors.New("disk full")
}

func (r *brokenRepo) Delete(ctx context.Context, key types.StorageKey) error {
	return errors.New("disk full")
}

func (r *brokenRepo) Close() error { return nil }
