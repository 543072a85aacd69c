package http_test

import (
	"context"
	"net/http"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"

	controller "github.com/groupbuy/core/pkg/controller/http"
)

// fakeProcurementUC records which operations were invoked so dispatch
// tests can assert the request reached the right collaborator.
type fakeProcurementUC struct {
	calls []string
}

func (f *fakeProcurementUC) List(ctx context.Context, filter *model.ProcurementFilter) ([]*model.ProcurementSummary, error) {
	f.calls = append(f.calls, "list")
	return []*model.ProcurementSummary{}, nil
}

func (f *fakeProcurementUC) Create(ctx context.Context, req *model.CreateProcurementRequest) (*model.ProcurementSummary, error) {
	f.calls = append(f.calls, "create")
	return &model.ProcurementSummary{Procurement: *req.Procurement()}, nil
}

func (f *fakeProcurementUC) Get(ctx context.Context, id types.ProcurementID) (*model.ProcurementSummary, error) {
	f.calls = append(f.calls, "get")
	if id == 404 {
		return nil, model.ErrNotFound
	}
	return &model.ProcurementSummary{
		Procurement: model.Procurement{ID: id, Status: model.ProcurementActive},
	}, nil
}

func (f *fakeProcurementUC) Join(ctx context.Context, id types.ProcurementID, req *model.JoinRequest) (*model.Participant, error) {
	f.calls = append(f.calls, "join")
	if req.UserID == nil {
		return nil, model.ErrValidation
	}
	return &model.Participant{ProcurementID: id, UserID: *req.UserID, Quantity: 1, IsActive: true}, nil
}

func (f *fakeProcurementUC) Leave(ctx context.Context, id types.ProcurementID) error {
	f.calls = append(f.calls, "leave")
	return nil
}

func (f *fakeProcurementUC) Categories(ctx context.Context) ([]*model.Category, error) {
	f.calls = append(f.calls, "categories")
	return []*model.Category{{ID: 1, Name: "Groceries", IsActive: true}}, nil
}

type fakeUserUC struct {
	calls []string
}

func (f *fakeUserUC) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	f.calls = append(f.calls, "register")
	return &model.User{ID: 1, TelegramID: req.TelegramID, Username: req.Username}, nil
}

func (f *fakeUserUC) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	f.calls = append(f.calls, "get")
	if id == 404 {
		return nil, model.ErrNotFound
	}
	return &model.User{ID: id}, nil
}

type fakeChatUC struct {
	calls []string
}

func (f *fakeChatUC) ListMessages(ctx context.Context, procurementID types.ProcurementID) ([]*model.Message, error) {
	f.calls = append(f.calls, "list")
	return []*model.Message{}, nil
}

func (f *fakeChatUC) PostMessage(ctx context.Context, procurementID types.ProcurementID, req *model.PostMessageRequest) (*model.Message, error) {
	f.calls = append(f.calls, "post")
	return &model.Message{ID: "m1", ProcurementID: procurementID, UserID: req.UserID, Text: req.Text}, nil
}

type fakePaymentUC struct {
	calls []string
}

func (f *fakePaymentUC) Record(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	f.calls = append(f.calls, "record")
	return &model.Payment{ID: "p1", ParticipantID: req.ParticipantID, Amount: req.Amount, Status: model.PaymentPending}, nil
}

func (f *fakePaymentUC) Get(ctx context.Context, id string) (*model.Payment, error) {
	f.calls = append(f.calls, "get")
	return &model.Payment{ID: id, Status: model.PaymentPending}, nil
}

func (f *fakePaymentUC) ListByParticipant(ctx context.Context, participantID types.ParticipantID) ([]*model.Payment, error) {
	f.calls = append(f.calls, "list")
	return []*model.Payment{}, nil
}

type fakeAdminStore struct {
	calls []string
}

func (f *fakeAdminStore) Resources(ctx context.Context) ([]*interfaces.AdminResource, error) {
	f.calls = append(f.calls, "resources")
	return []*interfaces.AdminResource{{Name: "procurements", Count: 2}}, nil
}

func (f *fakeAdminStore) Rows(ctx context.Context, resource string, limit, offset int) ([]map[string]any, error) {
	f.calls = append(f.calls, "rows:"+resource)
	if resource == "nope" {
		return nil, model.ErrNotFound
	}
	return []map[string]any{{"id": int64(1)}}, nil
}

// testServer bundles the server with its fakes for assertions
type testServer struct {
	handler      http.Handler
	procurements *fakeProcurementUC
	users        *fakeUserUC
	chat         *fakeChatUC
	payments     *fakePaymentUC
	admin        *fakeAdminStore
}

func newTestServer(opts ...controller.Option) (*testServer, error) {
	ts := &testServer{
		procurements: &fakeProcurementUC{},
		users:        &fakeUserUC{},
		chat:         &fakeChatUC{},
		payments:     &fakePaymentUC{},
		admin:        &fakeAdminStore{},
	}

	opts = append([]controller.Option{controller.WithAddr("localhost:0")}, opts...)
	server, err := controller.NewServer(
		context.Background(),
		ts.procurements,
		ts.users,
		ts.chat,
		ts.payments,
		ts.admin,
		opts...,
	)
	if err != nil {
		return nil, err
	}
	ts.handler = server.Handler
	return ts, nil
}
