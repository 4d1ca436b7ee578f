package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventease/internal/domain"
)

// testLogger is a no-op logger so service tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// mockUserRepo implements domain.UserRepository.
type mockUserRepo struct {
	users         map[string]*domain.User // keyed by ID
	byEmail       map[string]*domain.User
	getByEmailErr error
	createErr     error
	created       []*domain.User
	listResult    []*domain.User
	listErr       error

	updateRoleErr  error
	lastRoleUserID string
	lastRole       string

	deleteErr     error
	deletedUserID string
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.ID = "user-created"
	m.created = append(m.created, u)
	return nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return m.listResult, m.listErr
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, userID, role string) error {
	m.lastRoleUserID = userID
	m.lastRole = role
	if m.updateRoleErr != nil {
		return m.updateRoleErr
	}
	if u, ok := m.users[userID]; ok {
		u.Role = role
		return nil
	}
	return domain.ErrNotFound
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	m.deletedUserID = id
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// mockEventRepo implements domain.EventRepository.
type mockEventRepo struct {
	events       map[string]*domain.Event // keyed by ID
	createErr    error
	created      []*domain.Event
	listResult   []*domain.Event
	listTotal    int
	listErr      error
	byOrganizer  map[string][]*domain.Event
	updateResult *domain.Event
	updateErr    error
	deleteErr    error
	deletedID    string
}

func (m *mockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = "event-created"
	m.created = append(m.created, e)
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockEventRepo) List(ctx context.Context, filter domain.EventFilter, p domain.PaginationParams) ([]*domain.Event, int, error) {
	return m.listResult, m.listTotal, m.listErr
}

func (m *mockEventRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return m.byOrganizer[organizerID], nil
}

func (m *mockEventRepo) Update(ctx context.Context, eventID string, title *string, description *string, date *time.Time) (*domain.Event, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updateResult, nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

// mockRegistrationRepo implements domain.RegistrationRepository.
type mockRegistrationRepo struct {
	byEventAndUser map[string]*domain.Registration // keyed by eventID+"/"+userID
	byEventErr     error
	byEvent        map[string][]*domain.Registration
	byUser         map[string][]*domain.Registration
	byUserErr      error
	attendees      []*domain.Attendee
	attendeesErr   error
}

func (m *mockRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if m.byEventErr != nil {
		return nil, m.byEventErr
	}
	if reg, ok := m.byEventAndUser[eventID+"/"+userID]; ok {
		return reg, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	return m.byEvent[eventID], m.byEventErr
}

func (m *mockRegistrationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return m.byUser[userID], m.byUserErr
}

func (m *mockRegistrationRepo) ListAttendeesByEventID(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	return m.attendees, m.attendeesErr
}

// mockTicketRepo implements domain.TicketRepository.
type mockTicketRepo struct {
	byCode           map[string]*domain.Ticket
	byRegistrationID map[string]*domain.Ticket
}

func (m *mockTicketRepo) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	if t, ok := m.byCode[code]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockTicketRepo) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Ticket, error) {
	if t, ok := m.byRegistrationID[registrationID]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

// mockRegistrationTx implements domain.RegistrationTx and records calls.
type mockRegistrationTx struct {
	createRegErr    error
	createTicketErr error
	deleteTicketErr error
	deleteRegErr    error

	createdReg         *domain.Registration
	createdTicket      *domain.Ticket
	deletedTicketRegID string
	deletedRegID       string
}

func (t *mockRegistrationTx) CreateRegistration(ctx context.Context, reg *domain.Registration) error {
	t.createdReg = reg
	if t.createRegErr != nil {
		return t.createRegErr
	}
	reg.ID = "reg-created"
	return nil
}

func (t *mockRegistrationTx) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	t.createdTicket = ticket
	if t.createTicketErr != nil {
		return t.createTicketErr
	}
	ticket.ID = "ticket-created"
	return nil
}

func (t *mockRegistrationTx) DeleteTicketByRegistrationID(ctx context.Context, registrationID string) error {
	t.deletedTicketRegID = registrationID
	return t.deleteTicketErr
}

func (t *mockRegistrationTx) DeleteRegistration(ctx context.Context, registrationID string) error {
	t.deletedRegID = registrationID
	return t.deleteRegErr
}

// mockUnitOfWork implements domain.RegistrationUnitOfWork. The closure result
// decides whether the fake transaction "commits" or "rolls back".
type mockUnitOfWork struct {
	tx         mockRegistrationTx
	beginErr   error
	committed  bool
	rolledBack bool
}

func (u *mockUnitOfWork) WithinTx(ctx context.Context, fn func(tx domain.RegistrationTx) error) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	if err := fn(&u.tx); err != nil {
		u.rolledBack = true
		return err
	}
	u.committed = true
	return nil
}

// mockQRRenderer implements domain.QRRenderer.
type mockQRRenderer struct {
	png []byte
	err error
}

func (m *mockQRRenderer) Render(code string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.png, nil
}

// mockArtifactStore implements domain.ArtifactStore.
type mockArtifactStore struct {
	writeErr error
	written  map[string][]byte
	removed  []string
}

func (m *mockArtifactStore) Write(code string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.written == nil {
		m.written = make(map[string][]byte)
	}
	m.written[code] = data
	return nil
}

func (m *mockArtifactStore) Path(code string) (string, error) {
	if _, ok := m.written[code]; !ok {
		return "", domain.ErrNotFound
	}
	return "/artifacts/" + code + ".png", nil
}

func (m *mockArtifactStore) Remove(code string) error {
	m.removed = append(m.removed, code)
	return nil
}

// mockNotificationRepo implements domain.NotificationRepository.
type mockNotificationRepo struct {
	createErr    error
	failForUsers map[string]bool // per-recipient create failures
	created      []*domain.Notification

	listResult []*domain.Notification
	listTotal  int
	listErr    error

	markReadResult *domain.Notification
	markReadErr    error
	markAllCount   int64
	markAllErr     error
	unreadCount    int
	unreadErr      error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.failForUsers[n.UserID] {
		return context.DeadlineExceeded
	}
	n.ID = "notif-created"
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) ListByUserID(ctx context.Context, userID string, unreadOnly bool, p domain.PaginationParams) ([]*domain.Notification, int, error) {
	return m.listResult, m.listTotal, m.listErr
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	return m.markReadResult, m.markReadErr
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return m.markAllCount, m.markAllErr
}

func (m *mockNotificationRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	return m.unreadCount, m.unreadErr
}

// mockNotificationService implements domain.NotificationService and records
// who got notified.
type mockNotificationService struct {
	notifyErr error
	notified  []struct {
		UserID  string
		Title   string
		Message string
		EventID *string
	}
	fanouts []struct {
		EventID       string
		Title         string
		Message       string
		ExcludeUserID string
	}
}

func (m *mockNotificationService) NotifyUser(ctx context.Context, userID, title, message string, eventID *string) (*domain.Notification, error) {
	m.notified = append(m.notified, struct {
		UserID  string
		Title   string
		Message string
		EventID *string
	}{userID, title, message, eventID})
	if m.notifyErr != nil {
		return nil, m.notifyErr
	}
	return domain.NewNotification(title, message, userID, eventID, time.Now()), nil
}

func (m *mockNotificationService) NotifyEventParticipants(ctx context.Context, eventID, title, message string, excludeUserID string) []*domain.Notification {
	m.fanouts = append(m.fanouts, struct {
		EventID       string
		Title         string
		Message       string
		ExcludeUserID string
	}{eventID, title, message, excludeUserID})
	return nil
}

func (m *mockNotificationService) Broadcast(ctx context.Context, actorID, title, message string, eventID *string) ([]*domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool, p domain.PaginationParams) ([]*domain.Notification, int, error) {
	return nil, 0, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (m *mockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

// mockEmailService implements domain.EmailService.
type mockEmailService struct {
	sendErr error
	sent    []*domain.TicketIssuedEmailData
}

func (m *mockEmailService) SendTicketIssued(ctx context.Context, data *domain.TicketIssuedEmailData) error {
	m.sent = append(m.sent, data)
	return m.sendErr
}

// mockHasher implements domain.PasswordHasher with reversible fakes.
type mockHasher struct {
	hashErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return domain.ErrInvalidInput
}

// mockTokenIssuer implements domain.TokenIssuer.
type mockTokenIssuer struct {
	issueErr error
}

func (m *mockTokenIssuer) Issue(userID, email, role string, expiry time.Duration) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	return "token-for-" + userID, nil
}
