// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/puic/quickxs-server/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// routine functions
	CreateRoutine(day, startTime, subject string, teacher, classroom *string, duration int) (model.RoutineEntry, error)
	GetRoutineByID(id int) (model.RoutineEntry, error)
	ListRoutines() ([]model.RoutineEntry, error)
	UpdateRoutine(id int, day, startTime, subject, teacher, classroom *string, duration *int) error
	DeleteRoutine(id int) error

	// event functions
	CreateEvent(date, startTime, name string, info *string, eventType string, priority *string) (model.EventEntry, error)
	GetEventByID(id int) (model.EventEntry, error)
	ListEvents() ([]model.EventEntry, error)
	UpdateEvent(id int, date, startTime, name, info, eventType, priority *string) error
	SetEventCompleted(id int, completed bool) error
	DeleteEvent(id int) error

	// link functions
	CreateLink(name, url string, category *string) (model.Link, error)
	GetLinkByID(id int) (model.Link, error)
	ListLinks() ([]model.Link, error)
	UpdateLink(id int, name, url, category *string) error
	DeleteLink(id int) error

	// notification settings
	GetNotificationSettings(userID int) (model.NotificationSettings, error)
	SaveNotificationSettings(s model.NotificationSettings) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) { return GetUserByEmail(email) }
func (s *pgStore) GetUserByID(id int) (*model.User, error)          { return GetUserByID(id) }
func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (s *pgStore) CreateRoutine(day, startTime, subject string, teacher, classroom *string, duration int) (model.RoutineEntry, error) {
	return CreateRoutine(day, startTime, subject, teacher, classroom, duration)
}
func (s *pgStore) GetRoutineByID(id int) (model.RoutineEntry, error) { return GetRoutineByID(id) }
func (s *pgStore) ListRoutines() ([]model.RoutineEntry, error)       { return ListRoutines() }
func (s *pgStore) UpdateRoutine(id int, day, startTime, subject, teacher, classroom *string, duration *int) error {
	return UpdateRoutine(id, day, startTime, subject, teacher, classroom, duration)
}
func (s *pgStore) DeleteRoutine(id int) error { return DeleteRoutine(id) }

func (s *pgStore) CreateEvent(date, startTime, name string, info *string, eventType string, priority *string) (model.EventEntry, error) {
	return CreateEvent(date, startTime, name, info, eventType, priority)
}
func (s *pgStore) GetEventByID(id int) (model.EventEntry, error) { return GetEventByID(id) }
func (s *pgStore) ListEvents() ([]model.EventEntry, error)       { return ListEvents() }
func (s *pgStore) UpdateEvent(id int, date, startTime, name, info, eventType, priority *string) error {
	return UpdateEvent(id, date, startTime, name, info, eventType, priority)
}
func (s *pgStore) SetEventCompleted(id int, completed bool) error {
	return SetEventCompleted(id, completed)
}
func (s *pgStore) DeleteEvent(id int) error { return DeleteEvent(id) }

func (s *pgStore) CreateLink(name, url string, category *string) (model.Link, error) {
	return CreateLink(name, url, category)
}
func (s *pgStore) GetLinkByID(id int) (model.Link, error) { return GetLinkByID(id) }
func (s *pgStore) ListLinks() ([]model.Link, error)       { return ListLinks() }
func (s *pgStore) UpdateLink(id int, name, url, category *string) error {
	return UpdateLink(id, name, url, category)
}
func (s *pgStore) DeleteLink(id int) error { return DeleteLink(id) }

func (s *pgStore) GetNotificationSettings(userID int) (model.NotificationSettings, error) {
	return GetNotificationSettings(userID)
}
func (s *pgStore) SaveNotificationSettings(settings model.NotificationSettings) error {
	return SaveNotificationSettings(settings)
}
