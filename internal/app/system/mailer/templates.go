// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// PasswordResetEmailData holds data for the password reset email.
type PasswordResetEmailData struct {
	SiteName  string
	ResetURL  string
	ExpiresIn string // e.g., "1 hour"
}

// BuildPasswordResetEmail creates the reset email with text and HTML bodies.
// The caller sets To.
func BuildPasswordResetEmail(data PasswordResetEmailData) Email {
	return Email{
		Subject:  "Password Reset",
		TextBody: buildResetText(data),
		HTMLBody: buildResetHTML(data),
	}
}

func buildResetText(data PasswordResetEmailData) string {
	var buf bytes.Buffer
	buf.WriteString("You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n")
	buf.WriteString("Please click on the following link, or paste this into your browser to complete the process:\n\n")
	buf.WriteString(data.ResetURL + "\n\n")
	buf.WriteString(fmt.Sprintf("This link expires in %s.\n\n", data.ExpiresIn))
	buf.WriteString("If you did not request this, please ignore this email and your password will remain unchanged.\n")
	return buf.String()
}

var resetHTML = template.Must(template.New("reset").Parse(resetHTMLTemplate))

func buildResetHTML(data PasswordResetEmailData) string {
	var buf bytes.Buffer
	_ = resetHTML.Execute(&buf, data)
	return buf.String()
}

const resetHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Password Reset</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #1f2937;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Someone asked to reset the password for your account. Use the button below to choose a new one.
              </p>
              <p style="text-align: center; margin: 0 0 24px;">
                <a href="{{.ResetURL}}" style="display: inline-block; padding: 12px 24px; background-color: #2563eb; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 600;">Reset password</a>
              </p>
              <p style="margin: 0; font-size: 14px; color: #6b7280;">
                This link expires in {{.ExpiresIn}}. If you did not request this, you can ignore this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
