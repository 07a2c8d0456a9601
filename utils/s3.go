package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Uploader stores food images in a public S3 bucket.
type S3Uploader struct {
	client *s3.Client
	bucket string
}

func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("S3_BUCKET"),
	}, nil
}

// UploadBase64Image takes a "data:<mime>;base64,<data>" payload, stores it
// under food-images/ and returns the public URL.
func (u *S3Uploader) UploadBase64Image(ctx context.Context, base64Data, filenamePrefix string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	metaParts := strings.SplitN(meta, ":", 2)
	if len(metaParts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	mediaType := metaParts[1]                           // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0] // "image/jpeg"

	exts, _ := mime.ExtensionsByType(contentType)
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if len(exts) > 0 {
			ext = exts[0]
		} else {
			subParts := strings.SplitN(contentType, "/", 2)
			if len(subParts) == 2 {
				ext = "." + subParts[1]
			}
		}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("food-images/%s-%d%s",
		filenamePrefix,
		time.Now().UnixNano(),
		ext,
	)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	if cfURL == "" {
		cfURL = fmt.Sprintf("https://%s.s3.amazonaws.com", u.bucket)
	}
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}
