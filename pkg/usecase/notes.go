package usecase

import (
	"context"

	"github.com/secmon-lab/coachnote/pkg/domain/model"
)

type NotesUseCase struct {
	nb *notebook
}

func newNotesUseCase(nb *notebook) *NotesUseCase {
	return &NotesUseCase{nb: nb}
}

// Render returns the full plain-text notes of the current session
func (uc *NotesUseCase) Render(ctx context.Context) *Download {
	s, labels := uc.nb.snapshot(ctx)
	return &Download{
		FileName:    model.NotesFileName(s),
		ContentType: ContentTypeText,
		Data:        []byte(model.FullNotes(s, labels)),
	}
}
