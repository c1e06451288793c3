package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"collab-srv/internal/model"
	"collab-srv/internal/notification"
	"collab-srv/pkg/log"
)

type fakeSender struct {
	calls   int
	to      string
	subject string
	body    string
	err     error
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.body = htmlBody
	return f.err
}

func TestDispatch(t *testing.T) {
	t.Run("approved email", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, log.NewNop())

		err := uc.Dispatch(context.Background(), notification.DispatchInput{
			BusinessEmail:  "brand@acme.test",
			InfluencerName: "Ada Chen",
			Status:         model.InquiryStatusApproved,
			Note:           "Let's start next week.",
		})
		if err != nil {
			t.Fatalf("Dispatch returned error: %v", err)
		}

		if sender.to != "brand@acme.test" {
			t.Errorf("recipient = %q", sender.to)
		}
		if sender.subject != subjectApproved {
			t.Errorf("subject = %q", sender.subject)
		}
		if !strings.Contains(sender.body, "Ada Chen") {
			t.Error("body missing influencer name")
		}
		if !strings.Contains(sender.body, "<strong>Message:</strong>") || !strings.Contains(sender.body, "start next week") {
			t.Error("body missing the influencer's note")
		}
	})

	t.Run("rejected email without note omits feedback section", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, log.NewNop())

		if err := uc.Dispatch(context.Background(), notification.DispatchInput{
			BusinessEmail:  "brand@acme.test",
			InfluencerName: "Ada Chen",
			Status:         model.InquiryStatusRejected,
		}); err != nil {
			t.Fatalf("Dispatch returned error: %v", err)
		}

		if sender.subject != subjectRejected {
			t.Errorf("subject = %q", sender.subject)
		}
		if strings.Contains(sender.body, "Feedback:") {
			t.Error("empty note must not render a feedback section")
		}
	})

	t.Run("needs info email embeds the request", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, log.NewNop())

		if err := uc.Dispatch(context.Background(), notification.DispatchInput{
			BusinessEmail:  "brand@acme.test",
			InfluencerName: "Ada Chen",
			Status:         model.InquiryStatusNeedsInfo,
			Note:           "What usage rights do you need?",
		}); err != nil {
			t.Fatalf("Dispatch returned error: %v", err)
		}

		if sender.subject != subjectNeedsInfo {
			t.Errorf("subject = %q", sender.subject)
		}
		if !strings.Contains(sender.body, "What they need:") {
			t.Error("body missing the needs-info section")
		}
	})

	t.Run("note is html escaped", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, log.NewNop())

		if err := uc.Dispatch(context.Background(), notification.DispatchInput{
			BusinessEmail:  "brand@acme.test",
			InfluencerName: "Ada <script>",
			Status:         model.InquiryStatusApproved,
			Note:           `<img src=x onerror="alert(1)">`,
		}); err != nil {
			t.Fatalf("Dispatch returned error: %v", err)
		}

		if strings.Contains(sender.body, "<script>") || strings.Contains(sender.body, "<img") {
			t.Error("body must not contain unescaped markup from inputs")
		}
	})

	t.Run("pending status has no template", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, log.NewNop())

		err := uc.Dispatch(context.Background(), notification.DispatchInput{
			BusinessEmail: "brand@acme.test",
			Status:        model.InquiryStatusPending,
		})
		if !errors.Is(err, notification.ErrUnknownStatus) {
			t.Errorf("err = %v, want ErrUnknownStatus", err)
		}
		if sender.calls != 0 {
			t.Error("no email must be sent for an unknown status")
		}
	})

	t.Run("missing recipient", func(t *testing.T) {
		sender := &fakeSender{}
		uc := New(sender, log.NewNop())

		err := uc.Dispatch(context.Background(), notification.DispatchInput{
			Status: model.InquiryStatusApproved,
		})
		if !errors.Is(err, notification.ErrEmailRequired) {
			t.Errorf("err = %v, want ErrEmailRequired", err)
		}
	})

	t.Run("sender failure propagates", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("resend 503")}
		uc := New(sender, log.NewNop())

		err := uc.Dispatch(context.Background(), notification.DispatchInput{
			BusinessEmail: "brand@acme.test",
			Status:        model.InquiryStatusApproved,
		})
		if err == nil {
			t.Error("expected the sender error to propagate")
		}
	})
}
