package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes emails to a directory instead of sending them. Each email
// produces an .html file, a .txt file when a text body is present and a .json
// metadata file.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a DevSender writing into dir.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// SendEmail implements EmailSender.
func (d *DevSender) SendEmail(_ context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	id := params.Tag
	if id == "" {
		id = params.Subject
	}
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405.000000")+"_"+sanitizeFilename(id))

	files := map[string][]byte{".html": []byte(params.BodyHTML)}
	if params.BodyText != "" {
		files[".txt"] = []byte(params.BodyText)
	}
	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	files[".json"] = meta

	for ext, data := range files {
		if err := os.WriteFile(base+ext, data, 0o644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrFailedToSendEmail, ext, err)
		}
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		return "email"
	}
	return s
}
