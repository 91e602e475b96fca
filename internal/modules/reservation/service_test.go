package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studioreserve/internal/domain"
	"studioreserve/internal/repository"
)

// Mocks
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) VisibleReservations(ctx context.Context, caller domain.Caller, f repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, caller, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockAuthorizer) AuthorizeObject(ctx context.Context, caller domain.Caller, r *domain.Reservation) error {
	args := m.Called(ctx, caller, r)
	return args.Error(0)
}

type MockAdmitter struct {
	mock.Mock
}

func (m *MockAdmitter) Admit(ctx context.Context, d Draft) (*domain.Reservation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockAdmitter) Readmit(ctx context.Context, id int64, d Draft) (*domain.Reservation, error) {
	args := m.Called(ctx, id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mocks struct {
	access *MockAuthorizer
	guard  *MockAdmitter
	repo   *MockReservationRepository
	users  *MockUserReader
}

func newTestService() (*Service, mocks) {
	m := mocks{
		access: new(MockAuthorizer),
		guard:  new(MockAdmitter),
		repo:   new(MockReservationRepository),
		users:  new(MockUserReader),
	}
	return NewService(m.access, m.guard, m.repo, m.users), m
}

var (
	customer = domain.Caller{UserID: 10, Role: domain.RoleCustomer}
	employee = domain.Caller{UserID: 20, Role: domain.RoleEmployee}
	owner    = domain.Caller{UserID: 30, Role: domain.RoleStudioOwner}
	nobody   = domain.Caller{UserID: 40}
)

func TestService_Create_CustomerBooksForSelf(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	want := Draft{CustomerID: customer.UserID, StudioID: 1, Date: "2024-05-01", Time: "10:00"}
	m.access.On("AuthorizeObject", ctx, customer, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.CustomerID == customer.UserID && r.StudioID == 1
	})).Return(nil)
	m.guard.On("Admit", ctx, want).Return(&domain.Reservation{ID: 7, CustomerID: customer.UserID, StudioID: 1}, nil)

	r, err := svc.Create(ctx, customer, CreateReservationRequest{StudioID: 1, Date: "2024-05-01", Time: "10:00"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), r.ID)
	m.access.AssertExpectations(t)
	m.guard.AssertExpectations(t)
}

func TestService_Create_CustomerForSomeoneElse(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.Create(context.Background(), customer, CreateReservationRequest{
		CustomerID: 99, StudioID: 1, Date: "2024-05-01", Time: "10:00",
	})

	assert.ErrorIs(t, err, domain.ErrNotPermitted)
	m.guard.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestService_Create_EmployeeOnBehalfOfCustomer(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.users.On("GetByID", ctx, int64(11)).Return(&domain.User{ID: 11, Role: domain.RoleCustomer}, nil)
	m.access.On("AuthorizeObject", ctx, employee, mock.Anything).Return(nil)
	m.guard.On("Admit", ctx, Draft{CustomerID: 11, StudioID: 2, Date: "2024-05-01", Time: "09:30"}).
		Return(&domain.Reservation{ID: 8, CustomerID: 11, StudioID: 2}, nil)

	r, err := svc.Create(ctx, employee, CreateReservationRequest{
		CustomerID: 11, StudioID: 2, Date: "2024-05-01", Time: "09:30",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), r.CustomerID)
}

func TestService_Create_OnBehalfRequiresCustomer(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		user  *domain.User
		err   error
		field string
	}{
		{name: "missing", id: 0, field: "customer_id"},
		{name: "unknown", id: 5, err: domain.ErrNotFound, field: "customer_id"},
		{name: "not a customer", id: 6, user: &domain.User{ID: 6, Role: domain.RoleEmployee}, field: "customer_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService()
			if tt.id != 0 {
				if tt.user != nil {
					m.users.On("GetByID", mock.Anything, tt.id).Return(tt.user, nil)
				} else {
					m.users.On("GetByID", mock.Anything, tt.id).Return(nil, tt.err)
				}
			}

			_, err := svc.Create(context.Background(), owner, CreateReservationRequest{
				CustomerID: tt.id, StudioID: 1, Date: "2024-05-01", Time: "10:00",
			})

			require.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			m.guard.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_NoRole(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.Create(context.Background(), nobody, CreateReservationRequest{StudioID: 1, Date: "2024-05-01", Time: "10:00"})

	assert.ErrorIs(t, err, domain.ErrNotPermitted)
	m.guard.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidRequest(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.Create(context.Background(), customer, CreateReservationRequest{StudioID: 1, Date: "2024-13-01", Time: "10:00"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	m.access.AssertNotCalled(t, "AuthorizeObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_EmployeeOtherStudioDenied(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.users.On("GetByID", ctx, int64(11)).Return(&domain.User{ID: 11, Role: domain.RoleCustomer}, nil)
	m.access.On("AuthorizeObject", ctx, employee, mock.Anything).Return(domain.ErrNotPermitted)

	_, err := svc.Create(ctx, employee, CreateReservationRequest{CustomerID: 11, StudioID: 3, Date: "2024-05-01", Time: "10:00"})

	assert.ErrorIs(t, err, domain.ErrNotPermitted)
	m.guard.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestService_Create_PropagatesGuardRejection(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.access.On("AuthorizeObject", ctx, customer, mock.Anything).Return(nil)
	m.guard.On("Admit", ctx, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	_, err := svc.Create(ctx, customer, CreateReservationRequest{StudioID: 1, Date: "2024-05-01", Time: "10:00"})

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestService_Get_EmployeeOtherStudio(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	r := &domain.Reservation{ID: 5, CustomerID: 11, StudioID: 2}
	m.repo.On("GetByID", ctx, int64(5)).Return(r, nil)
	m.access.On("AuthorizeObject", ctx, employee, r).Return(domain.ErrNotPermitted)

	_, err := svc.Get(ctx, employee, 5)

	assert.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, m := newTestService()
	m.repo.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), customer, 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.access.AssertNotCalled(t, "AuthorizeObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_DeniedLeavesStore(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	r := &domain.Reservation{ID: 5, CustomerID: 11, StudioID: 2}
	m.repo.On("GetByID", ctx, int64(5)).Return(r, nil)
	m.access.On("AuthorizeObject", ctx, customer, r).Return(domain.ErrNotPermitted)

	err := svc.Delete(ctx, customer, 5)

	assert.ErrorIs(t, err, domain.ErrNotPermitted)
	m.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_Allowed(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	r := &domain.Reservation{ID: 5, CustomerID: customer.UserID, StudioID: 2}
	m.repo.On("GetByID", ctx, int64(5)).Return(r, nil)
	m.access.On("AuthorizeObject", ctx, customer, r).Return(nil)
	m.repo.On("Delete", ctx, int64(5)).Return(nil)

	require.NoError(t, svc.Delete(ctx, customer, 5))
	m.repo.AssertExpectations(t)
}

func TestService_Replace_ChecksBothSides(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	existing := &domain.Reservation{ID: 5, CustomerID: 11, StudioID: 2}
	m.repo.On("GetByID", ctx, int64(5)).Return(existing, nil)
	m.users.On("GetByID", ctx, int64(11)).Return(&domain.User{ID: 11, Role: domain.RoleCustomer}, nil)
	m.access.On("AuthorizeObject", ctx, owner, existing).Return(nil).Once()
	m.access.On("AuthorizeObject", ctx, owner, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.StudioID == 9
	})).Return(domain.ErrNotPermitted).Once()

	_, err := svc.Replace(ctx, owner, 5, ReplaceReservationRequest{CustomerID: 11, StudioID: 9, Date: "2024-05-01", Time: "10:00"})

	assert.ErrorIs(t, err, domain.ErrNotPermitted)
	m.guard.AssertNotCalled(t, "Readmit", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Replace_Readmits(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	existing := &domain.Reservation{ID: 5, CustomerID: customer.UserID, StudioID: 2}
	m.repo.On("GetByID", ctx, int64(5)).Return(existing, nil)
	m.access.On("AuthorizeObject", ctx, customer, mock.Anything).Return(nil)
	m.guard.On("Readmit", ctx, int64(5), Draft{CustomerID: customer.UserID, StudioID: 2, Date: "2024-05-03", Time: "11:00"}).
		Return(&domain.Reservation{ID: 5, Date: "2024-05-03"}, nil)

	r, err := svc.Replace(ctx, customer, 5, ReplaceReservationRequest{StudioID: 2, Date: "2024-05-03", Time: "11:00"})

	require.NoError(t, err)
	assert.Equal(t, "2024-05-03", r.Date)
}

func TestService_List(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.access.On("VisibleReservations", ctx, employee, repository.ReservationFilter{Date: "2024-05-01"}).
		Return([]domain.Reservation{{ID: 1}, {ID: 2}}, nil)

	items, err := svc.List(ctx, employee, ListReservationsQuery{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	m.access.On("VisibleReservations", ctx, nobody, mock.Anything).Return(nil, domain.ErrNoRoleAssigned)
	_, err = svc.List(ctx, nobody, ListReservationsQuery{})
	assert.ErrorIs(t, err, domain.ErrNoRoleAssigned)

	_, err = svc.List(ctx, employee, ListReservationsQuery{Date: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
