package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"collab-srv/internal/inquiry"
	"collab-srv/pkg/storage"

	"github.com/google/uuid"
)

// UploadAttachment - Store an inquiry attachment and return its link. Used by
// the public form before submit.
func (uc *implUseCase) UploadAttachment(ctx context.Context, input inquiry.UploadAttachmentInput) (inquiry.AttachmentOutput, error) {
	if uc.storage == nil {
		return inquiry.AttachmentOutput{}, errors.New("attachment storage is not configured")
	}
	if input.Reader == nil || input.FileName == "" {
		return inquiry.AttachmentOutput{}, inquiry.ErrAttachmentRequired
	}
	if input.Size <= 0 || input.Size > inquiry.MaxAttachmentSize {
		return inquiry.AttachmentOutput{}, inquiry.ErrAttachmentTooLarge
	}

	objectName := fmt.Sprintf("inquiries/%s/%s%s",
		time.Now().UTC().Format("2006-01-02"), uuid.New().String(), filepath.Ext(input.FileName))

	info, err := uc.storage.Upload(ctx, storage.UploadRequest{
		ObjectName:   objectName,
		OriginalName: input.FileName,
		Reader:       input.Reader,
		Size:         input.Size,
		ContentType:  input.ContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.UploadAttachment: upload failed: %v", err)
		return inquiry.AttachmentOutput{}, err
	}

	url, err := uc.storage.PresignedGetURL(ctx, objectName, inquiry.AttachmentURLExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "inquiry.usecase.UploadAttachment: presign failed: %v", err)
		return inquiry.AttachmentOutput{}, err
	}

	return inquiry.AttachmentOutput{
		ObjectName: info.ObjectName,
		URL:        url,
		Size:       info.Size,
	}, nil
}
