package file_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/file"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *mockS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func newS3(t *testing.T, client *mockS3Client, cfg file.S3Config) *file.S3Storage {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "logos"
	}
	if cfg.Region == "" {
		cfg.Region = "eu-west-1"
	}
	storage, err := file.NewS3Storage(context.Background(), cfg, file.WithS3Client(client))
	require.NoError(t, err)
	return storage
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{}
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, err := io.ReadAll(in.Body)
		return err == nil &&
			*in.Bucket == "logos" &&
			*in.Key == "u1/logo.png" &&
			*in.ContentType == "image/png" &&
			*in.ContentLength == 3 &&
			string(body) == "png"
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	storage := newS3(t, client, file.S3Config{})
	obj, err := storage.Put(context.Background(), "/u1/logo.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "u1/logo.png", obj.Key)
	assert.Equal(t, "https://logos.s3.eu-west-1.amazonaws.com/u1/logo.png", obj.URL)
	client.AssertExpectations(t)
}

func TestS3Storage_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  file.S3Config
		want string
	}{
		{name: "aws default", cfg: file.S3Config{}, want: "https://logos.s3.eu-west-1.amazonaws.com/a.png"},
		{name: "custom endpoint", cfg: file.S3Config{Endpoint: "http://minio:9000/"}, want: "http://minio:9000/logos/a.png"},
		{name: "cdn base url", cfg: file.S3Config{BaseURL: "https://cdn.example.com/"}, want: "https://cdn.example.com/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			storage := newS3(t, &mockS3Client{}, tt.cfg)
			assert.Equal(t, tt.want, storage.URL("a.png"))
		})
	}
}

func TestS3Storage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}, want: file.ErrAccessDenied},
		{name: "throttled", err: &smithy.GenericAPIError{Code: "SlowDown"}, want: file.ErrServiceUnavailable},
		{name: "no such bucket", err: &types.NoSuchBucket{}, want: file.ErrBucketNotFound},
		{name: "timeout", err: context.DeadlineExceeded, want: file.ErrOperationTimeout},
		{name: "canceled", err: context.Canceled, want: file.ErrOperationCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := &mockS3Client{}
			client.On("PutObject", mock.Anything, mock.Anything).Return(nil, tt.err)

			storage := newS3(t, client, file.S3Config{})
			_, err := storage.Put(context.Background(), "a.png", "image/png", []byte("x"))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown api error keeps cause", func(t *testing.T) {
		t.Parallel()
		cause := &smithy.GenericAPIError{Code: "Weird"}
		client := &mockS3Client{}
		client.On("DeleteObject", mock.Anything, mock.Anything).Return(nil, cause)

		storage := newS3(t, client, file.S3Config{})
		err := storage.Delete(context.Background(), "a.png")
		var apiErr smithy.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Weird", apiErr.ErrorCode())
	})
}

func TestNewS3Storage_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "eu-west-1"})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)
}
