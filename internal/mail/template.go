package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// RenderOTPTemplate renders the HTML body carrying a one-time passcode.
func RenderOTPTemplate(otp int) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Your Verification Code</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4CAF50;">Your Verification Code</h1>
		<p>Hello,</p>
		<p>Use the code below to continue. It expires in 10 minutes.</p>
		<div style="text-align: center; margin: 30px 0;">
			<span style="background-color: #f4f4f4; padding: 12px 30px; border-radius: 5px; display: inline-block; font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</span>
		</div>
		<p>If you didn't request this code, please ignore this email.</p>
		<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
		<p style="color: #999; font-size: 12px;">This is an automated message, please do not reply.</p>
	</div>
</body>
</html>`

	t, err := template.New("otp").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Code string
	}{
		Code: fmt.Sprintf("%06d", otp),
	}

	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
