package usecase

import (
	"html"
	"strings"
)

const (
	subjectApproved  = "Great news! Your collaboration proposal has been approved"
	subjectRejected  = "Update on your collaboration proposal"
	subjectNeedsInfo = "More information needed for your collaboration proposal"
)

// buildApprovedBody - Approval email, optional note from the influencer
func buildApprovedBody(influencerName, note string) string {
	var b strings.Builder
	b.WriteString("<h2>Your proposal has been approved!</h2>")
	b.WriteString("<p>Hi there,</p>")
	b.WriteString("<p><strong>" + html.EscapeString(influencerName) + "</strong> has reviewed your collaboration proposal and approved it.</p>")
	if note != "" {
		b.WriteString("<p><strong>Message:</strong><br>" + html.EscapeString(note) + "</p>")
	}
	b.WriteString("<p>They will be in touch with you soon to discuss next steps.</p>")
	b.WriteString("<br><p>Best regards,<br>The Monad Team</p>")
	return b.String()
}

// buildRejectedBody - Rejection email, optional feedback
func buildRejectedBody(influencerName, note string) string {
	var b strings.Builder
	b.WriteString("<h2>Update on your proposal</h2>")
	b.WriteString("<p>Hi there,</p>")
	b.WriteString("<p>Thank you for your interest in collaborating with <strong>" + html.EscapeString(influencerName) + "</strong>.</p>")
	b.WriteString("<p>After careful consideration, they've decided not to move forward with this particular collaboration at this time.</p>")
	if note != "" {
		b.WriteString("<p><strong>Feedback:</strong><br>" + html.EscapeString(note) + "</p>")
	}
	b.WriteString("<p>We appreciate you reaching out and wish you the best with your future campaigns.</p>")
	b.WriteString("<br><p>Best regards,<br>The Monad Team</p>")
	return b.String()
}

// buildNeedsInfoBody - Request for additional information
func buildNeedsInfoBody(influencerName, note string) string {
	var b strings.Builder
	b.WriteString("<h2>Additional information needed</h2>")
	b.WriteString("<p>Hi there,</p>")
	b.WriteString("<p><strong>" + html.EscapeString(influencerName) + "</strong> has reviewed your collaboration proposal and needs some additional information before making a decision.</p>")
	if note != "" {
		b.WriteString("<p><strong>What they need:</strong><br>" + html.EscapeString(note) + "</p>")
	}
	b.WriteString("<p>Please reply to this email with the requested information, and they'll review your proposal again.</p>")
	b.WriteString("<br><p>Best regards,<br>The Monad Team</p>")
	return b.String()
}
