package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"collab-srv/internal/inquiry"
	"collab-srv/internal/model"
)

func TestPostMessage(t *testing.T) {
	t.Run("appends the business turn and the agent's reply in order", func(t *testing.T) {
		fx := newFixture()
		out, err := fx.uc.Submit(context.Background(), submitInput())
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}

		turn, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
			InquiryID: out.ID,
			Content:   "Our budget is $500.",
		})
		if err != nil {
			t.Fatalf("PostMessage returned error: %v", err)
		}

		if turn.UserMessage.Role != model.MessageRoleUser || turn.UserMessage.Content != "Our budget is $500." {
			t.Errorf("user half = %+v", turn.UserMessage)
		}
		if turn.AIMessage.Role != model.MessageRoleAssistant || turn.AIMessage.Content != fx.agent.chatOut {
			t.Errorf("agent half = %+v", turn.AIMessage)
		}

		msgs, err := fx.uc.ListMessages(context.Background(), out.ID)
		if err != nil {
			t.Fatalf("ListMessages returned error: %v", err)
		}
		// seeded first response + user turn + agent reply
		if len(msgs) != 3 {
			t.Fatalf("transcript length = %d, want 3", len(msgs))
		}
		if msgs[1].Role != model.MessageRoleUser || msgs[2].Role != model.MessageRoleAssistant {
			t.Errorf("transcript order broken: %q then %q", msgs[1].Role, msgs[2].Role)
		}

		// The agent saw the history including the just-appended user turn.
		if fx.agent.lastHistoryLen != 2 {
			t.Errorf("agent saw %d history messages, want 2", fx.agent.lastHistoryLen)
		}
	})

	t.Run("closed chat conflicts", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())
		if _, err := fx.uc.Close(context.Background(), out.ID); err != nil {
			t.Fatalf("Close returned error: %v", err)
		}

		_, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
			InquiryID: out.ID,
			Content:   "Are you still there?",
		})
		if !errors.Is(err, inquiry.ErrChatClosed) {
			t.Errorf("err = %v, want ErrChatClosed", err)
		}

		msgs, _ := fx.uc.ListMessages(context.Background(), out.ID)
		if len(msgs) != 1 {
			t.Errorf("closed chat grew to %d messages", len(msgs))
		}
	})

	t.Run("validation", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		if _, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
			InquiryID: out.ID,
			Content:   "   ",
		}); !errors.Is(err, inquiry.ErrMessageRequired) {
			t.Errorf("blank content err = %v, want ErrMessageRequired", err)
		}

		if _, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
			InquiryID: out.ID,
			Content:   strings.Repeat("x", inquiry.MaxMessageLength+1),
		}); !errors.Is(err, inquiry.ErrMessageTooLong) {
			t.Errorf("oversized content err = %v, want ErrMessageTooLong", err)
		}

		if _, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
			InquiryID: "ghost",
			Content:   "Hello?",
		}); !errors.Is(err, inquiry.ErrNotFound) {
			t.Errorf("unknown inquiry err = %v, want ErrNotFound", err)
		}
	})

	t.Run("concurrent turns never interleave", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		const turns = 8
		var wg sync.WaitGroup
		wg.Add(turns)
		for i := 0; i < turns; i++ {
			go func() {
				defer wg.Done()
				_, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
					InquiryID: out.ID,
					Content:   "Concurrent question.",
				})
				if err != nil {
					t.Errorf("PostMessage returned error: %v", err)
				}
			}()
		}
		wg.Wait()

		msgs, _ := fx.uc.ListMessages(context.Background(), out.ID)
		// seed + (user, assistant) per turn
		if len(msgs) != 1+2*turns {
			t.Fatalf("transcript length = %d, want %d", len(msgs), 1+2*turns)
		}
		for i := 1; i < len(msgs); i += 2 {
			if msgs[i].Role != model.MessageRoleUser || msgs[i+1].Role != model.MessageRoleAssistant {
				t.Fatalf("interleaved turn at %d: %q then %q", i, msgs[i].Role, msgs[i+1].Role)
			}
		}
	})
}

func TestClose(t *testing.T) {
	t.Run("writes the recommendation and deactivates the chat", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())
		if _, err := fx.uc.PostMessage(context.Background(), inquiry.PostMessageInput{
			InquiryID: out.ID,
			Content:   "We can do $900.",
		}); err != nil {
			t.Fatalf("PostMessage returned error: %v", err)
		}

		closed, err := fx.uc.Close(context.Background(), out.ID)
		if err != nil {
			t.Fatalf("Close returned error: %v", err)
		}

		if closed.ChatActive {
			t.Error("chat must be inactive after close")
		}
		if closed.AIRecommendation != fx.agent.recommendationOut {
			t.Errorf("recommendation = %q", closed.AIRecommendation)
		}
		if closed.Status != model.InquiryStatusPending {
			t.Errorf("close must not change status, got %q", closed.Status)
		}
		if fx.agent.recommendationCalls != 1 {
			t.Errorf("recommendation generated %d times, want 1", fx.agent.recommendationCalls)
		}
		// submit + close events
		if fx.producer.count() != 2 {
			t.Errorf("published %d events, want 2", fx.producer.count())
		}
	})

	t.Run("second close conflicts without regenerating", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		first, err := fx.uc.Close(context.Background(), out.ID)
		if err != nil {
			t.Fatalf("Close returned error: %v", err)
		}

		if _, err := fx.uc.Close(context.Background(), out.ID); !errors.Is(err, inquiry.ErrChatClosed) {
			t.Errorf("err = %v, want ErrChatClosed", err)
		}
		if fx.agent.recommendationCalls != 1 {
			t.Errorf("recommendation generated %d times across both closes, want 1", fx.agent.recommendationCalls)
		}

		got, _ := fx.uc.Get(context.Background(), out.ID)
		if got.AIRecommendation != first.AIRecommendation {
			t.Error("second close must not rewrite the recommendation")
		}
	})

	t.Run("status decision survives a later close", func(t *testing.T) {
		fx := newFixture()
		out, _ := fx.uc.Submit(context.Background(), submitInput())

		if _, err := fx.uc.SetStatus(context.Background(), model.Scope{UserID: "inf-1"}, inquiry.SetStatusInput{
			InquiryID: out.ID,
			Status:    model.InquiryStatusApproved,
		}); err != nil {
			t.Fatalf("SetStatus returned error: %v", err)
		}
		<-fx.notifier.dispatched

		closed, err := fx.uc.Close(context.Background(), out.ID)
		if err != nil {
			t.Fatalf("Close returned error: %v", err)
		}
		if closed.Status != model.InquiryStatusApproved {
			t.Errorf("status = %q, want approved preserved", closed.Status)
		}
	})

	t.Run("unknown inquiry", func(t *testing.T) {
		fx := newFixture()
		if _, err := fx.uc.Close(context.Background(), "ghost"); !errors.Is(err, inquiry.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
