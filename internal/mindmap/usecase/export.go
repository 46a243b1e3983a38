package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"mindmap-srv/internal/mindmap"
	"mindmap-srv/pkg/minio"

	"gopkg.in/yaml.v3"
)

// Export - Upload the mind map structure to MinIO and return a presigned download URL
func (uc *implUseCase) Export(ctx context.Context, ip mindmap.ExportInput) (mindmap.ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(ip.Format))
	if format == "" {
		format = mindmap.ExportFormatJSON
	}

	// Step 1: Encode
	view, err := uc.Get(ctx, ip.VideoID)
	if err != nil {
		return mindmap.ExportOutput{}, err
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case mindmap.ExportFormatJSON:
		data, err = json.MarshalIndent(view, "", "  ")
		contentType = "application/json"
	case mindmap.ExportFormatYAML:
		data, err = yaml.Marshal(view)
		contentType = "application/yaml"
	default:
		return mindmap.ExportOutput{}, mindmap.ErrInvalidExportFormat
	}
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Export: Failed to encode %s: %v", view.VideoID, err)
		return mindmap.ExportOutput{}, mindmap.ErrExportFailed
	}

	// Step 2: Upload
	objectName := exportObjectName(uc.opts.ExportPrefix, view.VideoID, format)
	info, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.opts.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata:    map[string]string{"video-id": view.VideoID},
	})
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Export: Failed to upload %s: %v", objectName, err)
		return mindmap.ExportOutput{}, mindmap.ErrExportFailed
	}

	// Step 3: Presign
	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.opts.ExportBucket,
		ObjectName: objectName,
		Method:     minio.MethodGET,
		Expiry:     uc.opts.PresignExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.Export: Failed to presign %s: %v", objectName, err)
		return mindmap.ExportOutput{}, mindmap.ErrExportFailed
	}

	return mindmap.ExportOutput{
		VideoID:    view.VideoID,
		ObjectName: objectName,
		Format:     format,
		Size:       info.Size,
		URL:        presigned.URL,
		ExpiresAt:  presigned.ExpiresAt,
	}, nil
}
