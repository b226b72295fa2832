// Package email sends transactional email through Postmark, or writes it to
// disk in development.
//
//	sender, err := email.New(cfg)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "jane@acme.io",
//		Subject:  "Your email signature",
//		BodyHTML: html,
//		BodyText: text,
//		Tag:      "signature-delivery",
//	})
package email
