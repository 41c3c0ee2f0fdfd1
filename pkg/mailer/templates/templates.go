package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

// Template names understood by Render.
const (
	Welcome             = "welcome"
	BookingConfirmation = "booking_confirmation"
)

var subjects = map[string]string{
	Welcome:             "Welcome to Tripora",
	BookingConfirmation: "Your booking is confirmed",
}

var textBodies = map[string]string{
	Welcome: `Hi {{.Name}},

Your Tripora account is ready. Log in with {{.Email}} to start planning your next trip.

— The Tripora team
`,
	BookingConfirmation: `Hi {{.Name}},

Thanks for booking {{.PackageTitle}}. Payment {{.PaymentRef}} for {{.Amount}} has been recorded.

We'll see you there!

— The Tripora team
`,
}

var htmlBodies = map[string]string{
	Welcome: `<p>Hi {{.Name}},</p>
<p>Your Tripora account is ready. Log in with <strong>{{.Email}}</strong> to start planning your next trip.</p>
<p>— The Tripora team</p>`,
	BookingConfirmation: `<p>Hi {{.Name}},</p>
<p>Thanks for booking <strong>{{.PackageTitle}}</strong>. Payment <code>{{.PaymentRef}}</code> for {{.Amount}} has been recorded.</p>
<p>We'll see you there!</p>
<p>— The Tripora team</p>`,
}

// Render produces subject, text body, and HTML body for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	subject, ok := subjects[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}

	tt, err := texttpl.New(name).Parse(textBodies[name])
	if err != nil {
		return "", "", "", err
	}
	var tb bytes.Buffer
	if err := tt.Execute(&tb, data); err != nil {
		return "", "", "", err
	}

	ht, err := htmltpl.New(name).Parse(htmlBodies[name])
	if err != nil {
		return "", "", "", err
	}
	var hb bytes.Buffer
	if err := ht.Execute(&hb, data); err != nil {
		return "", "", "", err
	}

	return subject, tb.String(), hb.String(), nil
}
