package email

// Config holds the email settings. Without a Postmark server token the
// application writes emails to DevDir instead of sending them.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"signatures@signaturecraft.local"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@signaturecraft.local"`
	MessageStream        string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"tmp/emails"`
}

// UsePostmark reports whether Postmark credentials are configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != ""
}
