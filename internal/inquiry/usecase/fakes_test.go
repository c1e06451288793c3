package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"collab-srv/internal/agent"
	"collab-srv/internal/agent/prompt"
	"collab-srv/internal/inquiry"
	"collab-srv/internal/inquiry/repository"
	"collab-srv/internal/model"
	"collab-srv/internal/notification"
	"collab-srv/internal/preference"
	"collab-srv/internal/user"
	"collab-srv/pkg/log"
)

// fakeStore is an in-memory PostgresRepository.
type fakeStore struct {
	mu        sync.Mutex
	inquiries map[string]model.Inquiry
	messages  map[string][]model.Message
	seq       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		inquiries: map[string]model.Inquiry{},
		messages:  map[string][]model.Message{},
	}
}

func (f *fakeStore) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeStore) CreateInquiry(_ context.Context, opt repository.CreateInquiryOptions) (model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq := model.Inquiry{
		ID:            f.nextID("inq"),
		InfluencerID:  opt.InfluencerID,
		BusinessEmail: opt.BusinessEmail,
		Message:       opt.Message,
		Price:         opt.Price,
		CompanyInfo:   opt.CompanyInfo,
		AttachmentURL: opt.AttachmentURL,
		Status:        model.InquiryStatusPending,
		ChatActive:    true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.inquiries[inq.ID] = inq
	return inq, nil
}

func (f *fakeStore) GetInquiryByID(_ context.Context, id string) (model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.inquiries[id]
	if !ok {
		return model.Inquiry{}, repository.ErrNotFound
	}
	return inq, nil
}

func (f *fakeStore) ListInquiriesByInfluencer(_ context.Context, influencerID string) ([]model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Inquiry
	for _, inq := range f.inquiries {
		if inq.InfluencerID == influencerID {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateInquiryAIResponse(_ context.Context, id, aiResponse string) (model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.inquiries[id]
	if !ok {
		return model.Inquiry{}, repository.ErrNotFound
	}
	inq.AIResponse = aiResponse
	f.inquiries[id] = inq
	return inq, nil
}

func (f *fakeStore) UpdateInquiryStatus(_ context.Context, id, status string) (model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.inquiries[id]
	if !ok {
		return model.Inquiry{}, repository.ErrNotFound
	}
	inq.Status = status
	f.inquiries[id] = inq
	return inq, nil
}

func (f *fakeStore) CloseInquiryChat(_ context.Context, id, recommendation string) (model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.inquiries[id]
	if !ok {
		return model.Inquiry{}, repository.ErrNotFound
	}
	inq.ChatActive = false
	inq.AIRecommendation = recommendation
	f.inquiries[id] = inq
	return inq, nil
}

func (f *fakeStore) DeleteInquiry(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.inquiries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.inquiries, id)
	delete(f.messages, id)
	return nil
}

func (f *fakeStore) CreateMessage(_ context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := model.Message{
		ID:        f.nextID("msg"),
		InquiryID: opt.InquiryID,
		Role:      opt.Role,
		Content:   opt.Content,
		CreatedAt: time.Now(),
	}
	f.messages[opt.InquiryID] = append(f.messages[opt.InquiryID], msg)
	return msg, nil
}

func (f *fakeStore) ListMessagesByInquiry(_ context.Context, inquiryID string) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Message(nil), f.messages[inquiryID]...), nil
}

// fakeAgent records calls and returns canned replies.
type fakeAgent struct {
	mu                  sync.Mutex
	firstCalls          int
	chatCalls           int
	recommendationCalls int
	lastLang            string
	lastHistoryLen      int
	firstOut            string
	chatOut             string
	recommendationOut   string
}

func (f *fakeAgent) GenerateFirstResponse(_ context.Context, _ prompt.Facts, _ model.Preference, lang string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.firstCalls++
	f.lastLang = lang
	return f.firstOut
}

func (f *fakeAgent) GenerateChatTurn(_ context.Context, history []model.Message, _ prompt.Facts, _ model.Preference, lang string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatCalls++
	f.lastLang = lang
	f.lastHistoryLen = len(history)
	return f.chatOut
}

func (f *fakeAgent) GenerateRecommendation(_ context.Context, history []model.Message, _ prompt.Facts, _ model.Preference, lang string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recommendationCalls++
	f.lastLang = lang
	f.lastHistoryLen = len(history)
	return f.recommendationOut
}

// fakeNotifier records dispatches on a channel so detached sends can be
// awaited.
type fakeNotifier struct {
	dispatched chan notification.DispatchInput
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{dispatched: make(chan notification.DispatchInput, 4)}
}

func (f *fakeNotifier) Dispatch(_ context.Context, input notification.DispatchInput) error {
	f.dispatched <- input
	return nil
}

// fakeUsers serves GetByID; the rest of the user surface is unused here.
type fakeUsers struct {
	users map[string]model.User
}

func newFakeUsers(users ...model.User) *fakeUsers {
	f := &fakeUsers{users: map[string]model.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Register(context.Context, user.RegisterInput) (user.AuthOutput, error) {
	return user.AuthOutput{}, nil
}

func (f *fakeUsers) Login(context.Context, user.LoginInput) (user.AuthOutput, error) {
	return user.AuthOutput{}, nil
}

func (f *fakeUsers) GetMe(context.Context, model.Scope) (user.UserOutput, error) {
	return user.UserOutput{}, nil
}

func (f *fakeUsers) GetProfileByUsername(context.Context, string) (user.ProfileOutput, error) {
	return user.ProfileOutput{}, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) UpdateLanguage(context.Context, model.Scope, string) (user.UserOutput, error) {
	return user.UserOutput{}, nil
}

func (f *fakeUsers) UpdateUsername(context.Context, model.Scope, string) (user.UserOutput, error) {
	return user.UserOutput{}, nil
}

// fakePrefs serves Resolve with a fixed policy.
type fakePrefs struct {
	resolveCalls int
	pref         model.Preference
	err          error
}

func (f *fakePrefs) Get(context.Context, model.Scope) (preference.PreferenceOutput, error) {
	return preference.PreferenceOutput{}, preference.ErrNotFound
}

func (f *fakePrefs) Upsert(context.Context, model.Scope, preference.UpsertInput) (preference.PreferenceOutput, error) {
	return preference.PreferenceOutput{}, nil
}

func (f *fakePrefs) Resolve(_ context.Context, influencerID string) (model.Preference, error) {
	f.resolveCalls++
	if f.err != nil {
		return model.Preference{}, f.err
	}
	if f.pref.UserID == "" {
		return preference.Default(influencerID), nil
	}
	return f.pref, nil
}

// fakeProducer records published events.
type fakeProducer struct {
	mu     sync.Mutex
	events [][]byte
}

func (f *fakeProducer) Publish(_, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, value)
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func (f *fakeProducer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fixture struct {
	store    *fakeStore
	agent    *fakeAgent
	notifier *fakeNotifier
	users    *fakeUsers
	prefs    *fakePrefs
	producer *fakeProducer
	uc       inquiry.UseCase
}

func newFixture() *fixture {
	store := newFakeStore()
	agentUC := &fakeAgent{
		firstOut:          "Thanks for reaching out! What's the timeline?",
		chatOut:           "Got it. Any usage rights needed?",
		recommendationOut: "**APPROVE**\n\nBudget meets the rate.",
	}
	notifier := newFakeNotifier()
	users := newFakeUsers(model.User{
		ID:                 "inf-1",
		Email:              "ada@example.com",
		Username:           "ada",
		FirstName:          "Ada",
		LastName:           "Chen",
		LanguagePreference: "zh",
		UserType:           model.UserTypeInfluencer,
	})
	prefs := &fakePrefs{}
	producer := &fakeProducer{}

	return &fixture{
		store:    store,
		agent:    agentUC,
		notifier: notifier,
		users:    users,
		prefs:    prefs,
		producer: producer,
		uc:       New(store, prefs, agentUC, notifier, users, producer, nil, log.NewNop()),
	}
}

var _ agent.UseCase = (*fakeAgent)(nil)
var _ repository.PostgresRepository = (*fakeStore)(nil)
var _ user.UseCase = (*fakeUsers)(nil)
var _ preference.UseCase = (*fakePrefs)(nil)
var _ notification.UseCase = (*fakeNotifier)(nil)
