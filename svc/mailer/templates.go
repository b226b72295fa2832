package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

const (
	bodyFont   = "Arial, Helvetica, sans-serif"
	mutedColor = "#64748b"
	accent     = "#2563eb"
)

// Message is a rendered email.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Welcome is sent after sign-up.
func Welcome(ctx context.Context, appName, name, baseURL string) (Message, error) {
	greeting := "Hi"
	if n := strings.TrimSpace(name); n != "" {
		greeting = "Hi " + n
	}
	builderURL := strings.TrimRight(baseURL, "/") + "/builder"

	body := layout(appName,
		paragraph(greeting+","),
		paragraph("Welcome to "+appName+". Pick a template, fill in your details and copy a signature that works in Gmail, Outlook and Apple Mail."),
		button("Open the builder", builderURL),
	)
	html, err := render(ctx, markup.Component(markup.Document("Welcome to "+appName, body)))
	if err != nil {
		return Message{}, err
	}

	text := strings.Join([]string{
		greeting + ",",
		"",
		"Welcome to " + appName + ". Pick a template, fill in your details and copy a signature that works in Gmail, Outlook and Apple Mail.",
		"",
		"Open the builder: " + builderURL,
	}, "\n")

	return Message{Subject: "Welcome to " + appName, HTML: html, Text: text}, nil
}

// SignatureDelivery carries a rendered signature so the recipient can copy
// it from a real mail client. signatureHTML is embedded verbatim.
func SignatureDelivery(ctx context.Context, appName, title, signatureHTML, plainText string) (Message, error) {
	subject := "Your email signature"
	if t := strings.TrimSpace(title); t != "" {
		subject += ": " + t
	}

	body := layout(appName,
		paragraph("Here is your signature. Select everything between the lines, copy it and paste it into your mail client's signature settings."),
		markup.El("hr").Css("border", "0").Css("border-top", "1px solid #e2e8f0").Css("margin", "24px 0"),
		markup.El("div", markup.Raw(signatureHTML)),
		markup.El("hr").Css("border", "0").Css("border-top", "1px solid #e2e8f0").Css("margin", "24px 0"),
	)
	html, err := render(ctx, markup.Component(markup.Document(subject, body)))
	if err != nil {
		return Message{}, err
	}

	text := "Here is your signature. Paste it into your mail client's signature settings.\n\n" + plainText
	return Message{Subject: subject, HTML: html, Text: text}, nil
}

func layout(appName string, children ...markup.Node) markup.Node {
	return markup.El("div",
		markup.El("p", markup.Text(appName)).
			Css("font-weight", "bold").
			Css("color", accent).
			Css("margin", "0 0 16px 0"),
		markup.Fragment(children...),
		markup.El("p", markup.Text("You received this email because you have an account on "+appName+".")).
			Css("color", mutedColor).
			Css("font-size", "12px").
			Css("margin-top", "32px"),
	).
		Css("font-family", bodyFont).
		Css("max-width", "600px").
		Css("color", "#0f172a")
}

func paragraph(text string) markup.Node {
	return markup.El("p", markup.Text(text)).Css("line-height", "1.5")
}

func button(label, href string) markup.Node {
	return markup.El("a", markup.Text(label)).
		Attr("href", href).
		Css("display", "inline-block").
		Css("padding", "10px 18px").
		Css("background-color", accent).
		Css("color", "#ffffff").
		Css("border-radius", "4px").
		Css("text-decoration", "none")
}

// render writes a component into a string.
func render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return sb.String(), nil
}
