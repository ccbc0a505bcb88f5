package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/repository"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServer(t *testing.T) (*echo.Echo, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	e := echo.New()
	registerAuthRoutes(e.Group("/api"), services.NewAuthService(repository.NewUserRepository(mock)))
	return e, mock
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		e, mock := newAuthServer(t)

		rec := doJSON(e, http.MethodPost, "/api/auth/register", `{"password":"secret123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Error: Username is required!", rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("username taken", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("ravi").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		rec := doJSON(e, http.MethodPost, "/api/auth/register", `{"username":"ravi","password":"secret123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Error: Username already taken!", rec.Body.String())
	})

	t.Run("successful registration", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("ravi").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("ravi", pgxmock.AnyArg(), "").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		rec := doJSON(e, http.MethodPost, "/api/auth/register", `{"username":"ravi","password":"secret123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoginEndpoint(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("user not found", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectQuery("SELECT id, username, password, email FROM users WHERE username").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"whatever"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Error: User Not Found!", rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectQuery("SELECT id, username, password, email FROM users WHERE username").
			WithArgs("ravi").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "email"}).
				AddRow(int64(1), "ravi", string(digest), ""))

		rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"username":"ravi","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Error: Wrong Password", rec.Body.String())
	})

	t.Run("correct credentials return the user record", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectQuery("SELECT id, username, password, email FROM users WHERE username").
			WithArgs("ravi").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "email"}).
				AddRow(int64(1), "ravi", string(digest), "ravi@example.com"))

		rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"username":"ravi","password":"secret123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ravi", body["username"])
		assert.Equal(t, "ravi@example.com", body["email"])
		// known leak: the digest rides along in the response
		assert.Equal(t, string(digest), body["password"])
	})
}
