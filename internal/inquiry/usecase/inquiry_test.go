package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"collab-srv/internal/inquiry"
	"collab-srv/internal/model"
)

func submitInput() inquiry.SubmitInput {
	price := 500
	return inquiry.SubmitInput{
		InfluencerID:  "inf-1",
		BusinessEmail: "brand@acme.test",
		Message:       "We'd like a product review video.",
		Price:         &price,
		CompanyInfo:   "Acme Corp",
	}
}

func TestSubmit(t *testing.T) {
	t.Run("creates the inquiry, caches the reply, seeds the transcript", func(t *testing.T) {
		fx := newFixture()

		out, err := fx.uc.Submit(context.Background(), submitInput())
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}

		if out.Status != model.InquiryStatusPending {
			t.Errorf("status = %q, want pending", out.Status)
		}
		if !out.ChatActive {
			t.Error("a new inquiry must have an active chat")
		}
		if out.AIResponse != fx.agent.firstOut {
			t.Errorf("aiResponse = %q, want the agent's opening reply", out.AIResponse)
		}
		if out.AIRecommendation != "" {
			t.Error("aiRecommendation must be empty before close")
		}

		msgs, err := fx.uc.ListMessages(context.Background(), out.ID)
		if err != nil {
			t.Fatalf("ListMessages returned error: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected the seeded assistant message, got %d messages", len(msgs))
		}
		if msgs[0].Role != model.MessageRoleAssistant || msgs[0].Content != fx.agent.firstOut {
			t.Errorf("seeded message = %+v", msgs[0])
		}

		if fx.agent.firstCalls != 1 {
			t.Errorf("first response generated %d times, want 1", fx.agent.firstCalls)
		}
		if fx.agent.lastLang != "zh" {
			t.Errorf("agent language = %q, want the influencer's preference", fx.agent.lastLang)
		}
		if fx.producer.count() != 1 {
			t.Errorf("published %d events, want 1", fx.producer.count())
		}
	})

	t.Run("validation", func(t *testing.T) {
		fx := newFixture()
		badPrice := -10

		cases := []struct {
			name   string
			mutate func(*inquiry.SubmitInput)
			want   error
		}{
			{"missing influencer", func(in *inquiry.SubmitInput) { in.InfluencerID = "" }, inquiry.ErrInfluencerRequired},
			{"missing email", func(in *inquiry.SubmitInput) { in.BusinessEmail = " " }, inquiry.ErrBusinessEmailRequired},
			{"missing message", func(in *inquiry.SubmitInput) { in.Message = "" }, inquiry.ErrMessageRequired},
			{"negative price", func(in *inquiry.SubmitInput) { in.Price = &badPrice }, inquiry.ErrInvalidPrice},
			{"unknown influencer", func(in *inquiry.SubmitInput) { in.InfluencerID = "ghost" }, inquiry.ErrInfluencerNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := submitInput()
				tc.mutate(&in)
				if _, err := fx.uc.Submit(context.Background(), in); !errors.Is(err, tc.want) {
					t.Errorf("err = %v, want %v", err, tc.want)
				}
			})
		}
	})
}

func TestGet(t *testing.T) {
	fx := newFixture()
	out, err := fx.uc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	t.Run("by id", func(t *testing.T) {
		got, err := fx.uc.Get(context.Background(), out.ID)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got.ID != out.ID || got.BusinessEmail != "brand@acme.test" {
			t.Errorf("unexpected inquiry: %+v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := fx.uc.Get(context.Background(), "ghost"); !errors.Is(err, inquiry.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		if _, err := fx.uc.Get(context.Background(), ""); !errors.Is(err, inquiry.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestSetStatus(t *testing.T) {
	owner := model.Scope{UserID: "inf-1"}

	t.Run("approval notifies the business and keeps chat state", func(t *testing.T) {
		fx := newFixture()
		out, err := fx.uc.Submit(context.Background(), submitInput())
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}

		updated, err := fx.uc.SetStatus(context.Background(), owner, inquiry.SetStatusInput{
			InquiryID: out.ID,
			Status:    model.InquiryStatusApproved,
			Note:      "Excited to work together.",
		})
		if err != nil {
			t.Fatalf("SetStatus returned error: %v", err)
		}
		if updated.Status != model.InquiryStatusApproved {
			t.Errorf("status = %q", updated.Status)
		}
		if !updated.ChatActive {
			t.Error("a status decision must not close the chat")
		}
		if updated.AIRecommendation != "" {
			t.Error("a status decision must not write a recommendation")
		}

		select {
		case d := <-fx.notifier.dispatched:
			if d.BusinessEmail != "brand@acme.test" {
				t.Errorf("notified %q", d.BusinessEmail)
			}
			if d.Status != model.InquiryStatusApproved {
				t.Errorf("notified status %q", d.Status)
			}
			if d.InfluencerName != "Ada Chen" {
				t.Errorf("influencer name %q", d.InfluencerName)
			}
			if d.Note != "Excited to work together." {
				t.Errorf("note %q", d.Note)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("no notification dispatched")
		}
	})

	t.Run("revert to pending sends no email", func(t *testing.T) {
		fx := newFixture()
		out, err := fx.uc.Submit(context.Background(), submitInput())
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		if _, err := fx.uc.SetStatus(context.Background(), owner, inquiry.SetStatusInput{
			InquiryID: out.ID,
			Status:    model.InquiryStatusApproved,
		}); err != nil {
			t.Fatalf("SetStatus returned error: %v", err)
		}
		<-fx.notifier.dispatched

		updated, err := fx.uc.SetStatus(context.Background(), owner, inquiry.SetStatusInput{
			InquiryID: out.ID,
			Status:    model.InquiryStatusPending,
		})
		if err != nil {
			t.Fatalf("SetStatus returned error: %v", err)
		}
		if updated.Status != model.InquiryStatusPending {
			t.Errorf("status = %q", updated.Status)
		}

		select {
		case d := <-fx.notifier.dispatched:
			t.Errorf("pending revert must not notify, got %+v", d)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		_, err := fx.uc.SetStatus(context.Background(), owner, inquiry.SetStatusInput{
			InquiryID: out.ID,
			Status:    "archived",
		})
		if !errors.Is(err, inquiry.ErrInvalidStatus) {
			t.Errorf("err = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("only the owner decides", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		_, err := fx.uc.SetStatus(context.Background(), model.Scope{UserID: "inf-2"}, inquiry.SetStatusInput{
			InquiryID: out.ID,
			Status:    model.InquiryStatusRejected,
		})
		if !errors.Is(err, inquiry.ErrNotOwner) {
			t.Errorf("err = %v, want ErrNotOwner", err)
		}
	})
}

func TestDelete(t *testing.T) {
	owner := model.Scope{UserID: "inf-1"}

	t.Run("owner deletes inquiry and transcript", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		if err := fx.uc.Delete(context.Background(), owner, out.ID); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if _, err := fx.uc.Get(context.Background(), out.ID); !errors.Is(err, inquiry.ErrNotFound) {
			t.Errorf("deleted inquiry still readable: %v", err)
		}
		if _, err := fx.uc.ListMessages(context.Background(), out.ID); !errors.Is(err, inquiry.ErrNotFound) {
			t.Errorf("deleted transcript still readable: %v", err)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		if err := fx.uc.Delete(context.Background(), model.Scope{UserID: "inf-2"}, out.ID); !errors.Is(err, inquiry.ErrNotOwner) {
			t.Errorf("err = %v, want ErrNotOwner", err)
		}
	})
}

func TestList(t *testing.T) {
	fx := newFixture()
	if _, err := fx.uc.Submit(context.Background(), submitInput()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if _, err := fx.uc.Submit(context.Background(), submitInput()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	outputs, err := fx.uc.List(context.Background(), model.Scope{UserID: "inf-1"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(outputs) != 2 {
		t.Errorf("listed %d inquiries, want 2", len(outputs))
	}

	empty, err := fx.uc.List(context.Background(), model.Scope{UserID: "inf-2"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("listed %d inquiries for another influencer, want 0", len(empty))
	}
}
