package notification

import (
	"fmt"
	"html"
	"strings"

	"tradecall/models"
)

func bookingReceivedHTML(b *models.Booking, paymentRequestURL string) string {
	var sb strings.Builder
	sb.WriteString("<h2>New booking request</h2><table>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}
	row("Booking ID", b.ID)
	row("Name", b.Name)
	row("Email", b.Email)
	row("Phone", b.Phone)
	row("Address", b.Address)
	row("Services", strings.Join(b.Services, ", "))
	row("Preferred date", b.PreferredDate)
	row("Preferred time", b.PreferredTime)
	row("Urgent", yesNo(b.Urgency))
	row("Message", b.Message)
	row("Newsletter opt-in", yesNo(b.Newsletter))
	row("Terms accepted", yesNo(b.TermsAccepted))
	sb.WriteString("</table>")
	if paymentRequestURL != "" {
		fmt.Fprintf(&sb, `<p><a href="%s">Send payment request to customer</a></p>`, paymentRequestURL)
	}
	return sb.String()
}

func paymentRequestHTML(b *models.Booking) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for booking with us. To secure your booking, please settle the attendance fee. "+
			"We will be in touch shortly with payment details for booking <b>%s</b>.</p>",
		html.EscapeString(b.Name), html.EscapeString(b.ID),
	)
}

func invoiceHTML(b *models.Booking, invoiceURL string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Your payment was received and your booking is confirmed.</p>`+
			`<p>Your invoice: <a href="%s">%s</a></p>`,
		html.EscapeString(b.Name), invoiceURL, invoiceURL,
	)
}

func reminderHTML(name, date string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>A quick reminder that your booking is scheduled for %s. "+
			"Reply to this email if anything has changed.</p>",
		html.EscapeString(name), html.EscapeString(date),
	)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
