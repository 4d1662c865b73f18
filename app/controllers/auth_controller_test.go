package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

type stubUserRepo struct {
	users     map[uint]*models.User
	createErr error
	updated   []*models.User
}

func (s *stubUserRepo) Create(user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = uint(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetByActivationToken(token string) (*models.User, error) {
	for _, u := range s.users {
		if u.ActivationToken == token {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(user *models.User) error {
	s.users[user.ID] = user
	s.updated = append(s.updated, user)
	return nil
}

func (s *stubUserRepo) Delete(id uint) error {
	delete(s.users, id)
	return nil
}

func (s *stubUserRepo) List(offset, limit int) ([]models.User, error) { return nil, nil }
func (s *stubUserRepo) Count() (int64, error)                         { return int64(len(s.users)), nil }
func (s *stubUserRepo) CountByRole(models.Role) (int64, error)        { return 0, nil }
func (s *stubUserRepo) Search(string) ([]models.User, error)          { return nil, nil }

type stubPlayerRepo struct {
	created []*models.Player
}

func (s *stubPlayerRepo) Create(player *models.Player) error {
	s.created = append(s.created, player)
	return nil
}

func (s *stubPlayerRepo) GetByID(uint) (*models.Player, error) { return nil, gorm.ErrRecordNotFound }
func (s *stubPlayerRepo) GetByUserID(uint) (*models.Player, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubPlayerRepo) GetByIDs([]uint) ([]models.Player, error) { return nil, nil }
func (s *stubPlayerRepo) Update(*models.Player) error              { return nil }
func (s *stubPlayerRepo) Delete(uint) error                        { return nil }
func (s *stubPlayerRepo) List(int, int) ([]models.Player, error)   { return nil, nil }
func (s *stubPlayerRepo) Count() (int64, error)                    { return 0, nil }
func (s *stubPlayerRepo) Search(string) ([]models.Player, error)   { return nil, nil }

func newAuthTestApp(users *stubUserRepo, loggedInAs uint) *fiber.App {
	repository.SetGlobalRepositoriesForTesting(&repository.Repositories{
		User:   users,
		Player: &stubPlayerRepo{},
	})

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if loggedInAs != 0 {
			c.Locals("USER_CONTEXT", usercontext.UserContext{
				UserID:     loggedInAs,
				Username:   "captain",
				IsLoggedIn: true,
				Role:       models.RoleUser,
			})
		}
		return c.Next()
	})
	app.Post("/register", HandleAuthRegister)
	app.Post("/user/password", HandleAuthUpdatePassword)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func seedUser(t *testing.T, users *stubUserRepo, password string) *models.User {
	t.Helper()
	user, err := models.CreateUser("captain", "captain@example.com", password)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	user.Status = models.STATUS_ACTIVE
	if err := users.Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUpdatePassword(t *testing.T) {
	users := &stubUserRepo{users: map[uint]*models.User{}}
	user := seedUser(t, users, "oldsecret")
	app := newAuthTestApp(users, user.ID)

	status, _ := postJSON(t, app, "/user/password", fiber.Map{
		"current_password": "oldsecret",
		"new_password":     "newsecret",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(users.updated) != 1 {
		t.Fatalf("updated = %d rows, want 1", len(users.updated))
	}
	if !user.CheckPassword("newsecret") {
		t.Fatalf("new password does not verify")
	}
	if user.CheckPassword("oldsecret") {
		t.Fatalf("old password still verifies")
	}
}

func TestUpdatePassword_WrongCurrent(t *testing.T) {
	users := &stubUserRepo{users: map[uint]*models.User{}}
	user := seedUser(t, users, "oldsecret")
	app := newAuthTestApp(users, user.ID)

	status, _ := postJSON(t, app, "/user/password", fiber.Map{
		"current_password": "guessed",
		"new_password":     "newsecret",
	})
	if status != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
	if len(users.updated) != 0 {
		t.Fatalf("nothing may be written on a failed check")
	}
	if !user.CheckPassword("oldsecret") {
		t.Fatalf("password must be unchanged")
	}
}

func TestUpdatePassword_TooShort(t *testing.T) {
	users := &stubUserRepo{users: map[uint]*models.User{}}
	user := seedUser(t, users, "oldsecret")
	app := newAuthTestApp(users, user.ID)

	status, _ := postJSON(t, app, "/user/password", fiber.Map{
		"current_password": "oldsecret",
		"new_password":     "short",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestUpdatePassword_RequiresLogin(t *testing.T) {
	users := &stubUserRepo{users: map[uint]*models.User{}}
	seedUser(t, users, "oldsecret")
	app := newAuthTestApp(users, 0)

	status, _ := postJSON(t, app, "/user/password", fiber.Map{
		"current_password": "oldsecret",
		"new_password":     "newsecret",
	})
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestRegister_DuplicateEmailOnInsert(t *testing.T) {
	// The email pre-check passes but the insert loses the race against a
	// concurrent registration and hits the unique index.
	users := &stubUserRepo{
		users:     map[uint]*models.User{},
		createErr: gorm.ErrDuplicatedKey,
	}
	app := newAuthTestApp(users, 0)

	status, body := postJSON(t, app, "/register", fiber.Map{
		"username": "latecomer",
		"email":    "taken@example.com",
		"password": "secret123",
	})
	if status != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409 (body %v)", status, body)
	}
	if fmt.Sprint(body["error"]) != "conflict" {
		t.Fatalf("error = %v, want conflict", body["error"])
	}
}
