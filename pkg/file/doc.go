// Package file stores uploaded files on local disk or in S3-compatible object storage.
//
// Both backends implement Storage, which puts and deletes byte slices under
// slash-separated keys and builds public URLs for them. Keys are cleaned with
// CleanKey so they can never escape the storage root.
//
// Image helpers validate uploads before they are stored:
//
//	mimeType, ext, err := file.DetectImage(data)
//	if err != nil {
//		return err // file.ErrNotAnImage
//	}
//	obj, err := storage.Put(ctx, "logos/"+id+ext, mimeType, data)
//	dataURI := file.DataURI(mimeType, data)
//
// New selects the backend from Config, which is populated from LOGO_* and S3_*
// environment variables. LocalStorage exposes Handler so the stored files can be
// served by the application router.
//
// S3 errors are mapped to package errors (ErrAccessDenied, ErrBucketNotFound,
// ErrServiceUnavailable and so on) by inspecting smithy API error codes.
package file
